package publisher

import (
	"techdeals/dealsearcher/internal/deal"
)

// Publisher represents a service for publishing discovered deals
type Publisher interface {
	// PublishDeal publishes one deal record to the retailer's stream entry
	PublishDeal(retailer string, record deal.Record) error

	// TrimStreams trims all streams to the configured maximum length
	TrimStreams() error

	// Close closes the publisher connection
	Close() error
}

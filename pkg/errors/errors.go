package errors

import (
	"fmt"
	"time"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeNetwork represents fetch failures: connection errors, timeouts, bad status codes
	ErrorTypeNetwork ErrorType = "network"
	// ErrorTypeParsing represents HTML or price parsing errors
	ErrorTypeParsing ErrorType = "parsing"
	// ErrorTypeScraper represents unexpected faults inside an extractor
	ErrorTypeScraper ErrorType = "scraper"
	// ErrorTypeCache represents cache-related errors
	ErrorTypeCache ErrorType = "cache"
	// ErrorTypeValidation represents validation errors
	ErrorTypeValidation ErrorType = "validation"
	// ErrorTypeConfiguration represents configuration errors
	ErrorTypeConfiguration ErrorType = "configuration"
)

// SearchError represents an error raised while searching a retailer
type SearchError struct {
	Type     ErrorType
	Retailer string
	Message  string
	Err      error
	Time     time.Time
}

// Error implements the error interface
func (e *SearchError) Error() string {
	prefix := fmt.Sprintf("[%s]", e.Type)
	if e.Retailer != "" {
		prefix += " " + e.Retailer
	}
	if e.Err != nil {
		return fmt.Sprintf("%s %s - %v", prefix, e.Message, e.Err)
	}
	return fmt.Sprintf("%s %s", prefix, e.Message)
}

// Unwrap returns the underlying error
func (e *SearchError) Unwrap() error {
	return e.Err
}

// New creates a new SearchError
func New(errType ErrorType, retailer, message string, err error) *SearchError {
	return &SearchError{
		Type:     errType,
		Retailer: retailer,
		Message:  message,
		Err:      err,
		Time:     time.Now(),
	}
}

// NewNetwork creates a new network error
func NewNetwork(retailer, message string, err error) *SearchError {
	return New(ErrorTypeNetwork, retailer, message, err)
}

// NewParsing creates a new parsing error
func NewParsing(retailer, message string, err error) *SearchError {
	return New(ErrorTypeParsing, retailer, message, err)
}

// NewScraper creates a new scraper fault error
func NewScraper(retailer, message string, err error) *SearchError {
	return New(ErrorTypeScraper, retailer, message, err)
}

// NewCache creates a new cache error
func NewCache(retailer, message string, err error) *SearchError {
	return New(ErrorTypeCache, retailer, message, err)
}

// NewValidation creates a new validation error
func NewValidation(message string) *SearchError {
	return New(ErrorTypeValidation, "", message, nil)
}

// NewConfiguration creates a new configuration error
func NewConfiguration(message string, err error) *SearchError {
	return New(ErrorTypeConfiguration, "", message, err)
}

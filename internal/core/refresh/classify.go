package refresh

import (
	"weatherforecast.app/pkg/errors"
)

// Class is the dispatch category of a failed fetch
type Class int

const (
	ClassUnknown Class = iota
	ClassSilent
	ClassImmediateTerminal
	ClassRetryable
)

func (c Class) String() string {
	switch c {
	case ClassSilent:
		return "silent"
	case ClassImmediateTerminal:
		return "immediate_terminal"
	case ClassRetryable:
		return "retryable"
	default:
		return "unknown"
	}
}

// Human-facing messages per failure condition
const (
	MessageRequestInProgress = "A forecast request is already in progress."
	MessageInvalidRequest    = "Something went wrong while preparing the request. Please try again later."
	MessageDecoding          = "Received forecast data could not be read. Please try again later."
	MessageNoConnectivity    = "No internet connection. Check your network settings."
	MessageTimeout           = "The request timed out. Retrying..."
	MessageServerUnavailable = "The forecast server is unavailable. Retrying..."
	MessageInvalidResponse   = "The forecast server returned an unexpected response. Retrying..."
	MessageUpstreamFailure   = "The forecast service failed to respond. Retrying..."
	MessageNoCachedData      = "No saved forecast yet."
	MessageUnknown           = "An unexpected error occurred."
)

// Classification is the result of mapping a transport error to a dispatch class
type Classification struct {
	Class   Class
	Message string
}

// Classify maps a fetch error to its class and user-facing message. It has no side effects.
func Classify(err error) Classification {
	switch errors.TypeOf(err) {
	case errors.RequestInProgressError:
		return Classification{Class: ClassSilent, Message: MessageRequestInProgress}
	case errors.InvalidRequestError:
		return Classification{Class: ClassImmediateTerminal, Message: MessageInvalidRequest}
	case errors.DecodingError:
		return Classification{Class: ClassImmediateTerminal, Message: MessageDecoding}
	case errors.NoConnectivityError:
		return Classification{Class: ClassRetryable, Message: MessageNoConnectivity}
	case errors.TimeoutError:
		return Classification{Class: ClassRetryable, Message: MessageTimeout}
	case errors.ServerUnavailableError:
		return Classification{Class: ClassRetryable, Message: MessageServerUnavailable}
	case errors.InvalidResponseError:
		return Classification{Class: ClassRetryable, Message: MessageInvalidResponse}
	case errors.ExternalAPIError:
		return Classification{Class: ClassRetryable, Message: MessageUpstreamFailure}
	case errors.NoCachedDataError:
		return Classification{Class: ClassUnknown, Message: MessageNoCachedData}
	default:
		return Classification{Class: ClassUnknown, Message: MessageUnknown}
	}
}

package adapters

import (
	"generate-ad-video/domain"
	"github.com/aws/aws-sdk-go/aws/request"
)

// classifyAWSError tags retryable and throttling faults as transient so
// stages can retry them locally. Everything else passes through untouched.
func classifyAWSError(op string, err error) error {
	if err == nil {
		return nil
	}
	if request.IsErrorRetryable(err) || request.IsErrorThrottle(err) {
		return &domain.TransientServiceError{Op: op, Err: err}
	}
	return err
}

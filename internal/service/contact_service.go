package service

import (
	"context"
	"errors"

	"devfolio/internal/api/dto/v1/contact"
	"devfolio/internal/api/sanitization"
	"devfolio/internal/api/validation"
	"devfolio/internal/logging"
	"devfolio/internal/ratelimit"
)

// User-facing result messages. These are the whole vocabulary the form UI
// ever sees; internal failure detail never reaches them.
const (
	msgSent          = "Thank you! Your message has been sent successfully."
	msgRateLimited   = "Too many requests. Please try again later."
	msgConfigError   = "Server configuration error. Please contact support."
	msgTimeout       = "Request timed out. Please try again."
	msgDeliveryError = "Failed to send message. Please try again later."
)

// ContactService runs the contact form submission pipeline: rate limit,
// validate, sanitize, deliver. Every outcome, including internal failures,
// comes back as a ContactResponse; the method never returns an error.
type ContactService struct {
	limiter *ratelimit.Limiter
	webhook WebhookDeliverer
	logger  *logging.Logger
}

// NewContactService creates a contact service with its collaborators
// injected. The limiter instance is shared across all submissions.
func NewContactService(limiter *ratelimit.Limiter, webhook WebhookDeliverer, logger *logging.Logger) *ContactService {
	return &ContactService{
		limiter: limiter,
		webhook: webhook,
		logger:  logger,
	}
}

// Submit processes one submission attributed to identifier. Steps run in a
// fixed order and each gate short-circuits:
//
//  1. rate limit (denied attempts are not recorded by the limiter)
//  2. validation on the raw input; a honeypot hit answers with a fake
//     success and skips delivery entirely
//  3. sanitization of the accepted values
//  4. one delivery attempt, bounded by the webhook client's deadline
//
// Retrying is the caller's decision; a resubmission re-enters the limiter.
func (s *ContactService) Submit(ctx context.Context, req *contact.ContactRequest, identifier string) contact.ContactResponse {
	if !s.limiter.Allow(identifier) {
		return contact.ContactResponse{Success: false, Error: msgRateLimited}
	}

	result := validation.ValidateContactForm(req)
	switch result.Outcome {
	case validation.OutcomeBotDetected:
		// Fake success so the submitter cannot tell it was caught.
		s.logger.Warn("Honeypot triggered by %q", identifier)
		return contact.ContactResponse{Success: true, Message: msgSent}
	case validation.OutcomeInvalid:
		return contact.ContactResponse{Success: false, Error: result.Reason}
	}

	payload := WebhookPayload{
		Name:    sanitization.SanitizeString(req.Name),
		Email:   sanitization.SanitizeEmail(req.Email),
		Subject: sanitization.SanitizeString(req.Subject),
		Message: sanitization.SanitizeString(req.Message),
	}

	if err := s.webhook.Deliver(ctx, payload); err != nil {
		switch {
		case errors.Is(err, ErrNotConfigured):
			s.logger.Error("Contact webhook URL is not configured")
			return contact.ContactResponse{Success: false, Error: msgConfigError}
		case errors.Is(err, ErrTimeout):
			s.logger.Error("Contact delivery timed out")
			return contact.ContactResponse{Success: false, Error: msgTimeout}
		default:
			// Generic marker only; the error chain may carry downstream
			// detail that does not belong near a client-facing path.
			s.logger.Error("Contact delivery failed")
			return contact.ContactResponse{Success: false, Error: msgDeliveryError}
		}
	}

	return contact.ContactResponse{Success: true, Message: msgSent}
}

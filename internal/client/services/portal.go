package services

import (
	"context"

	"github.com/cmdcable/portal/internal/client/api"
	"github.com/cmdcable/portal/internal/client/models"
	"github.com/cmdcable/portal/internal/client/repositories/session"
	"github.com/cmdcable/portal/internal/common"
	"github.com/cmdcable/portal/internal/logging"
)

// PortalService exposes the credential-guarded billing-portal operations.
// Every method resolves the stored credential first and fails with
// common.ErrNoCredential, before any network call, when none is present.
type PortalService interface {
	CurrentSubscriber(ctx context.Context) (*models.Subscriber, error)
	Billings(ctx context.Context, year int) ([]models.Billing, error)
	Payments(ctx context.Context, year int) ([]models.Payment, error)
	PayableBillings(ctx context.Context) ([]models.Billing, error)
	SubmitPayment(ctx context.Context, sub api.PaymentSubmission) (*models.Payment, error)
}

type portalService struct {
	client   api.Client
	sessions session.Repository
	log      logging.Logger
}

// NewPortalService constructs a PortalService bound to the given API client
// and session store.
func NewPortalService(client api.Client, sessions session.Repository, log logging.Logger) PortalService {
	return &portalService{client: client, sessions: sessions, log: log}
}

func (p *portalService) credential(ctx context.Context) (string, error) {
	credential, err := p.sessions.Get(ctx)
	if err != nil || credential == "" {
		return "", common.ErrNoCredential
	}
	return credential, nil
}

func (p *portalService) CurrentSubscriber(ctx context.Context) (*models.Subscriber, error) {
	credential, err := p.credential(ctx)
	if err != nil {
		return nil, err
	}
	return p.client.CurrentSubscriber(ctx, credential)
}

func (p *portalService) Billings(ctx context.Context, year int) ([]models.Billing, error) {
	credential, err := p.credential(ctx)
	if err != nil {
		return nil, err
	}
	return p.client.Billings(ctx, credential, year)
}

func (p *portalService) Payments(ctx context.Context, year int) ([]models.Payment, error) {
	credential, err := p.credential(ctx)
	if err != nil {
		return nil, err
	}
	return p.client.Payments(ctx, credential, year)
}

func (p *portalService) PayableBillings(ctx context.Context) ([]models.Billing, error) {
	credential, err := p.credential(ctx)
	if err != nil {
		return nil, err
	}
	return p.client.PayableBillings(ctx, credential)
}

// SubmitPayment validates the submission client-side, then forwards it.
// Validation failures block before any network traffic.
func (p *portalService) SubmitPayment(ctx context.Context, sub api.PaymentSubmission) (*models.Payment, error) {
	if sub.SubscriberID == 0 {
		return nil, &ValidationError{Msg: "Missing subscriber information."}
	}
	if sub.BillingID == 0 {
		return nil, &ValidationError{Msg: "Please select a billing period to pay."}
	}

	credential, err := p.credential(ctx)
	if err != nil {
		return nil, err
	}

	created, err := p.client.SubmitPayment(ctx, credential, sub)
	if err != nil {
		return nil, err
	}
	p.log.Info(ctx, "payment submitted", "payment_id", created.ID, "status", created.Status)
	return created, nil
}

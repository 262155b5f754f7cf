package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmdcable/portal/internal/client/models"
	"github.com/cmdcable/portal/internal/client/services"
	"github.com/cmdcable/portal/internal/common"
)

func TestPay_NotLoggedIn(t *testing.T) {
	auth := &fakeAuthSvc{}
	portal := &fakePortalSvc{sub: testSubscriber()}
	a, out := newTestApp(auth, portal, "")

	err := a.Pay(context.Background())

	require.ErrorIs(t, err, common.ErrNoCredential)
	assert.Contains(t, out.String(), msgNotLoggedIn)
	assert.Equal(t, 0, portal.calls)
}

func TestPay_SubmitGCash(t *testing.T) {
	auth := &fakeAuthSvc{loggedIn: true}
	portal := &fakePortalSvc{
		sub:       testSubscriber(),
		payable:   []models.Billing{testBilling()},
		submitRet: &models.Payment{ID: 99, Status: "processing"},
	}
	// period: default, method: default (GCash), receipt: skip, confirm: yes
	a, out := newTestApp(auth, portal, "\n\n\ny\n")

	err := a.Pay(context.Background())

	require.NoError(t, err)
	sub := portal.lastSubmission
	assert.EqualValues(t, 7, sub.SubscriberID)
	assert.EqualValues(t, 12, sub.BillingID)
	assert.Equal(t, "Princess Connie Tamayao", sub.FullName)
	assert.Equal(t, models.MethodGCash, sub.Method)
	assert.Equal(t, gcashBillerName, sub.PayeeName)
	assert.Equal(t, "105959-210", sub.GCashReference, "serial number doubles as the GCash reference")
	assert.InDelta(t, 2299, sub.Amount, 0.001)
	assert.Empty(t, sub.ReceiptName)

	s := out.String()
	assert.Contains(t, s, "Total Amount Due  ₱2,299.00")
	assert.Contains(t, s, gcashBillerName)
	assert.Contains(t, s, "Payment submitted for verification. Thank you! (status: Processing)")
	assert.EqualValues(t, 12, a.payment.SelectedBillingID)
}

func TestPay_SubmitBankTransfer(t *testing.T) {
	auth := &fakeAuthSvc{loggedIn: true}
	portal := &fakePortalSvc{
		sub:       testSubscriber(),
		payable:   []models.Billing{testBilling()},
		submitRet: &models.Payment{ID: 100, Status: "processing"},
	}
	// period: default, method: 2 (bank transfer), receipt: skip, confirm: yes
	a, out := newTestApp(auth, portal, "\n2\n\nyes\n")

	err := a.Pay(context.Background())

	require.NoError(t, err)
	sub := portal.lastSubmission
	assert.Equal(t, models.MethodBankTransfer, sub.Method)
	assert.Equal(t, bankName, sub.BankName)
	assert.Equal(t, bankAccountName, sub.AccountName)
	assert.Equal(t, bankAccountNo, sub.AccountNumber)
	assert.Empty(t, sub.GCashReference)
	assert.Contains(t, out.String(), "Bank BPI")
	assert.Equal(t, models.MethodBankTransfer, a.payment.Method, "method choice is retained")
}

func TestPay_Cancelled(t *testing.T) {
	auth := &fakeAuthSvc{loggedIn: true}
	portal := &fakePortalSvc{
		sub:     testSubscriber(),
		payable: []models.Billing{testBilling()},
	}
	a, out := newTestApp(auth, portal, "\n\n\nn\n")

	err := a.Pay(context.Background())

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Payment cancelled.")
	assert.Zero(t, portal.lastSubmission.SubscriberID, "no submission on cancel")
}

func TestPay_NoPayablePeriodsBlocksSubmission(t *testing.T) {
	auth := &fakeAuthSvc{loggedIn: true}
	portal := &fakePortalSvc{sub: testSubscriber()}
	// method: default, receipt: skip, confirm: yes
	a, out := newTestApp(auth, portal, "\n\ny\n")

	err := a.Pay(context.Background())

	var ve *services.ValidationError
	require.ErrorAs(t, err, &ve)
	s := out.String()
	assert.Contains(t, s, "No open/overdue billings.")
	assert.Contains(t, s, "Please select a billing period to pay.")
	assert.Zero(t, portal.lastSubmission.SubscriberID)
}

func TestPay_SessionExpired(t *testing.T) {
	auth := &fakeAuthSvc{loggedIn: true}
	portal := &fakePortalSvc{subErr: common.ErrUnauthorized}
	a, out := newTestApp(auth, portal, "")

	err := a.Pay(context.Background())

	require.ErrorIs(t, err, common.ErrUnauthorized)
	assert.True(t, auth.logoutCalled)
	assert.Contains(t, out.String(), "Your session has expired. Please log in again.")
}

func TestPay_PreviousSelectionStaysDefault(t *testing.T) {
	older := models.Billing{
		ID: 11, StartDate: "2025-10-01", EndDate: "2025-10-31",
		DueDate: "2025-10-31", Amount: 2299, Status: "overdue",
	}
	auth := &fakeAuthSvc{loggedIn: true}
	portal := &fakePortalSvc{
		sub:       testSubscriber(),
		payable:   []models.Billing{testBilling(), older},
		submitRet: &models.Payment{Status: "processing"},
	}
	a, _ := newTestApp(auth, portal, "\n\n\ny\n")
	a.payment.SelectedBillingID = 11

	err := a.Pay(context.Background())

	require.NoError(t, err)
	assert.EqualValues(t, 11, portal.lastSubmission.BillingID)
	assert.InDelta(t, 2299, portal.lastSubmission.Amount, 0.001)
}

func TestPay_WithReceiptFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "receipt.png")
	require.NoError(t, os.WriteFile(path, []byte("png-bytes"), 0o600))

	auth := &fakeAuthSvc{loggedIn: true}
	portal := &fakePortalSvc{
		sub:       testSubscriber(),
		payable:   []models.Billing{testBilling()},
		submitRet: &models.Payment{Status: "processing"},
	}
	a, _ := newTestApp(auth, portal, "\n\n"+path+"\ny\n")

	err := a.Pay(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "receipt.png", portal.lastSubmission.ReceiptName)
	assert.Equal(t, []byte("png-bytes"), portal.lastSubmission.Receipt)
}

func TestReadReceipt_RejectsUnsupportedExtension(t *testing.T) {
	_, _, err := readReceipt("/tmp/receipt.exe")

	var ve *services.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Only PNG, JPG, or PDF files are allowed.", ve.Msg)
}

func TestReadReceipt_RejectsOversizeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "receipt.pdf")
	require.NoError(t, os.WriteFile(path, nil, 0o600))
	require.NoError(t, os.Truncate(path, maxReceiptBytes+1))

	_, _, err := readReceipt(path)

	var ve *services.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "File is larger than 5MB.", ve.Msg)
}

package evidence

import (
	"testing"

	"github.com/mahacyber/cyber-suraksha/internal/directory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	return NewService(directory.NewRepository())
}

func TestCollectScoring(t *testing.T) {
	svc := newTestService()

	tests := []struct {
		name     string
		input    Input
		expected int
	}{
		{"nothing supplied", Input{}, 0},
		{"amount only", Input{Amount: 50000}, 10},
		{"valid reference only", Input{UTR: "123456789012"}, 30},
		{"bank name only", Input{BankName: "HDFC Bank"}, 20},
		{"reference with inferable bank", Input{UTR: "SBIN0012345678"}, 50},
		{"reference, bank and amount", Input{UTR: "SBIN0012345678", Amount: 50000}, 60},
		{"flagged phone only", Input{SuspectPhone: "9876543210"}, 25},
		{"unflagged phone scores nothing", Input{SuspectPhone: "1111111111"}, 0},
		{"flagged url only", Input{SuspectURL: "fake-trading-app.com"}, 25},
		{"invalid reference scores nothing", Input{UTR: "!!!"}, 0},
		{
			"all signals capped at 100",
			Input{
				UTR:          "SBIN0012345678",
				SuspectPhone: "9876543210",
				SuspectURL:   "fake-trading-app.com",
				Amount:       50000,
			},
			100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := svc.Collect(tt.input)
			assert.Equal(t, tt.expected, report.Score)
		})
	}
}

func TestCollectScoreMonotonic(t *testing.T) {
	svc := newTestService()

	// Adding corroborating signals one at a time must never lower the score
	inputs := []Input{
		{},
		{Amount: 50000},
		{Amount: 50000, UTR: "SBIN0012345678"},
		{Amount: 50000, UTR: "SBIN0012345678", SuspectPhone: "9876543210"},
		{Amount: 50000, UTR: "SBIN0012345678", SuspectPhone: "9876543210", SuspectURL: "fake-trading-app.com"},
	}

	prev := -1
	for _, in := range inputs {
		score := svc.Collect(in).Score
		assert.GreaterOrEqual(t, score, prev)
		assert.LessOrEqual(t, score, 100)
		prev = score
	}
}

func TestCollectBankInference(t *testing.T) {
	svc := newTestService()

	t.Run("bank inferred from reference when absent", func(t *testing.T) {
		report := svc.Collect(Input{UTR: "SBIN0012345678"})
		assert.Equal(t, "State Bank of India", report.BankName)
		assert.Equal(t, "State Bank of India", report.BankIdentified)
	})

	t.Run("supplied bank never overwritten", func(t *testing.T) {
		report := svc.Collect(Input{UTR: "SBIN0012345678", BankName: "HDFC Bank"})
		assert.Equal(t, "HDFC Bank", report.BankName)
		assert.Empty(t, report.BankIdentified)
	})

	t.Run("no inference from invalid reference", func(t *testing.T) {
		report := svc.Collect(Input{UTR: "SBIN!!!"})
		assert.Empty(t, report.BankName)
		assert.Empty(t, report.BankIdentified)
	})

	t.Run("unknown prefix infers nothing", func(t *testing.T) {
		report := svc.Collect(Input{UTR: "ZZZZ1234567890"})
		assert.True(t, report.UTRValidated)
		assert.Empty(t, report.BankName)
	})
}

func TestCollectPhoneNormalization(t *testing.T) {
	svc := newTestService()

	t.Run("formatted phone normalized to digits", func(t *testing.T) {
		report := svc.Collect(Input{SuspectPhone: "98765 43210"})
		require.Len(t, report.SuspectChecks, 1)
		assert.Equal(t, "9876543210", report.SuspectChecks[0].Value)
		assert.True(t, report.SuspectChecks[0].Result.Found)
		assert.Equal(t, 25, report.Score)
	})

	t.Run("non-ten-digit phone skipped", func(t *testing.T) {
		report := svc.Collect(Input{SuspectPhone: "+91 98765 43210"})
		assert.Empty(t, report.SuspectChecks)
		assert.Equal(t, 0, report.Score)
	})
}

func TestCollectURLNormalization(t *testing.T) {
	svc := newTestService()

	tests := []struct {
		name  string
		url   string
		value string
		found bool
	}{
		{"protocol stripped", "https://fake-trading-app.com", "fake-trading-app.com", true},
		{"path truncated", "http://fake-trading-app.com/login?x=1", "fake-trading-app.com", true},
		{"uppercase lowered", "FAKE-TRADING-APP.COM", "fake-trading-app.com", true},
		{"clean host", "quick-loan-india.in", "quick-loan-india.in", true},
		{"unknown host", "example.com", "example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := svc.Collect(Input{SuspectURL: tt.url})
			require.Len(t, report.SuspectChecks, 1)
			assert.Equal(t, tt.value, report.SuspectChecks[0].Value)
			assert.Equal(t, tt.found, report.SuspectChecks[0].Result.Found)
		})
	}
}

func TestCollectAmountBanding(t *testing.T) {
	svc := newTestService()

	tests := []struct {
		name     string
		amount   float64
		expected AmountBand
	}{
		{"small loss", 5000, AmountLow},
		{"just under one lakh", 99999, AmountMedium},
		{"one lakh", 100000, AmountHigh},
		{"just under ten lakhs", 999999, AmountHigh},
		{"ten lakhs", 1000000, AmountCritical},
		{"crores", 25000000, AmountCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := svc.Collect(Input{Amount: tt.amount})
			assert.Equal(t, tt.expected, report.AmountBand)
		})
	}

	t.Run("zero amount gets no band", func(t *testing.T) {
		report := svc.Collect(Input{Amount: 0})
		assert.Empty(t, report.AmountBand)
		assert.Equal(t, 0, report.Score)
	})
}

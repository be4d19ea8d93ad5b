package api

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestCodec_SplitParticipantsPresence(t *testing.T) {
	tests := []struct {
		name      string
		split     []string
		wantJSON  string
		wantNil   bool
		wantCount int
	}{
		{"absent", nil, `"split_participants":null`, true, 0},
		{"empty", []string{}, `"split_participants":[]`, false, 0},
		{"set", []string{"Asha", "Ravi"}, `"split_participants":["Asha","Ravi"]`, false, 2},
	}

	var codec Codec
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := &CreatePurchaseRequest{
				ItemName:          "Milk",
				Amount:            decimal.RequireFromString("10"),
				BuyerName:         "Asha",
				PayerName:         "Asha",
				SplitParticipants: tt.split,
			}
			data, err := codec.Marshal(in)
			if err != nil {
				t.Fatalf("Marshal failed: %v", err)
			}
			if !strings.Contains(string(data), tt.wantJSON) {
				t.Errorf("expected %s in %s", tt.wantJSON, data)
			}

			var out CreatePurchaseRequest
			if err := codec.Unmarshal(data, &out); err != nil {
				t.Fatalf("Unmarshal failed: %v", err)
			}
			if (out.SplitParticipants == nil) != tt.wantNil {
				t.Errorf("nil split: expected %v, got %v", tt.wantNil, out.SplitParticipants == nil)
			}
			if len(out.SplitParticipants) != tt.wantCount {
				t.Errorf("split count: expected %d, got %d", tt.wantCount, len(out.SplitParticipants))
			}
		})
	}
}

func TestCodec_EmptyBody(t *testing.T) {
	var out ListRoommatesRequest
	if err := (Codec{}).Unmarshal(nil, &out); err != nil {
		t.Errorf("expected empty body to decode, got %v", err)
	}
}

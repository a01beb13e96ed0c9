package utils

import "testing"

func TestLooksLikeObjectID(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"507f1f77bcf86cd799439011", true},
		{"507F1F77BCF86CD799439011", true},
		{"507f1f77bcf86cd79943901", false},
		{"507f1f77bcf86cd7994390111", false},
		{"507f1f77bcf86cd79943901z", false},
		{"tx-abc-123", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := LooksLikeObjectID(tc.in); got != tc.want {
			t.Errorf("LooksLikeObjectID(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestOidRoundTrip(t *testing.T) {
	id, err := Oid("507f1f77bcf86cd799439011")
	if err != nil {
		t.Fatalf("Oid: %v", err)
	}
	if id.Hex() != "507f1f77bcf86cd799439011" {
		t.Errorf("round trip = %s", id.Hex())
	}
	if _, err := Oid("bogus"); err == nil {
		t.Error("Oid accepted a malformed id")
	}
}

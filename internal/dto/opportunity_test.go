package dto

import (
	"testing"

	"github.com/backlinehq/backline/internal/domain"
)

func TestCreateOpportunityRequestValidate(t *testing.T) {
	req := CreateOpportunityRequest{ArtistName: "The Headliners"}
	if ok, msg := req.Validate(); !ok {
		t.Fatalf("expected valid, got %s", msg)
	}
	if req.Stage != domain.DefaultOpportunityStage {
		t.Errorf("omitted stage must default to %q, got %q", domain.DefaultOpportunityStage, req.Stage)
	}

	req = CreateOpportunityRequest{ArtistName: "The Headliners", Stage: "Offer Sent"}
	req.Validate()
	if req.Stage != "Offer Sent" {
		t.Errorf("provided stage must be kept, got %q", req.Stage)
	}

	req = CreateOpportunityRequest{ArtistName: "   "}
	if ok, _ := req.Validate(); ok {
		t.Error("whitespace artist name must be rejected")
	}
}

func TestUpdateOpportunityRequestValidate(t *testing.T) {
	empty := UpdateOpportunityRequest{}
	if ok, _ := empty.Validate(); ok {
		t.Error("empty update must be rejected")
	}

	blank := " "
	withBlank := UpdateOpportunityRequest{ArtistName: &blank}
	if ok, _ := withBlank.Validate(); ok {
		t.Error("blank artist name must be rejected")
	}

	stage := "Contacted"
	stageOnly := UpdateOpportunityRequest{Stage: &stage}
	if ok, msg := stageOnly.Validate(); !ok {
		t.Errorf("single-field update must be valid, got %s", msg)
	}
}

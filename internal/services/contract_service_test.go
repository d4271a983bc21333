package services

import (
	"errors"
	"testing"

	"github.com/ka4a/talentai-sub000/internal/models"
)

func newContractWorld(t *testing.T) (*fixture, *ContractService) {
	t.Helper()
	f := newFixture(t)
	service := NewContractService(f.repos.Contracts, f.sink)
	return f, service
}

func TestCreateContractEnforcesPairUniqueness(t *testing.T) {
	f, service := newContractWorld(t)
	client := f.createClient("Acme")
	agency := f.createAgency("Scouts")

	if _, err := service.Create(agency.ID, client.ID); err != nil {
		t.Fatalf("create contract: %v", err)
	}
	_, err := service.Create(agency.ID, client.ID)
	if !IsIntegrityConflict(err) {
		t.Fatalf("expected one contract per pair, got %v", err)
	}
}

func TestInvitationFlowMovesContractToPending(t *testing.T) {
	f, service := newContractWorld(t)
	client := f.createClient("Acme")
	agency := f.createAgency("Scouts")
	actor := f.createUser("client-admin")

	contract, err := service.Create(agency.ID, client.ID)
	if err != nil {
		t.Fatalf("create contract: %v", err)
	}

	invited, err := service.InviteAgency(actor, contract.ID)
	if err != nil {
		t.Fatalf("invite agency: %v", err)
	}
	if invited.Status != models.ContractStatusAgencyInvited || invited.InvitationToken == "" {
		t.Fatalf("expected invited contract with a token, got status=%s token=%q", invited.Status, invited.InvitationToken)
	}

	accepted, err := service.AcceptInvitation(invited.InvitationToken)
	if err != nil {
		t.Fatalf("accept invitation: %v", err)
	}
	if accepted.Status != models.ContractStatusPending {
		t.Fatalf("expected pending status, got %s", accepted.Status)
	}
	if accepted.InvitationToken != "" {
		t.Fatal("expected the invitation token to be consumed")
	}

	// Consumed tokens cannot be replayed.
	if _, err := service.AcceptInvitation(invited.InvitationToken); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected replayed token to fail, got %v", err)
	}
}

func TestContractSignedOnlyWhenBothSidesSign(t *testing.T) {
	f, service := newContractWorld(t)
	client := f.createClient("Acme")
	agency := f.createAgency("Scouts")
	actor := f.createUser("signer")

	contract, err := service.Create(agency.ID, client.ID)
	if err != nil {
		t.Fatalf("create contract: %v", err)
	}

	half, err := service.SignByClient(actor, contract.ID)
	if err != nil {
		t.Fatalf("client sign: %v", err)
	}
	if half.Status == models.ContractStatusSigned {
		t.Fatal("expected contract not yet signed with one signature")
	}

	full, err := service.SignByAgency(actor, contract.ID)
	if err != nil {
		t.Fatalf("agency sign: %v", err)
	}
	if full.Status != models.ContractStatusSigned || !full.FullySigned() {
		t.Fatalf("expected fully signed contract, got status=%s", full.Status)
	}
}

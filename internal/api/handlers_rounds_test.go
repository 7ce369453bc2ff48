package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/jmcallejas/pasanaku/internal/models"
)

func roundPayload(beneficiaryID string) map[string]any {
	return map[string]any{
		"beneficiary_id": beneficiaryID,
		"turn_number":    1,
		"due_date":       time.Now().UTC().Add(30 * 24 * time.Hour).Format(time.RFC3339),
		"total_amount":   300.0,
	}
}

func TestCreateRoundStartsPending(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "host@example.com", "s3cret-password", models.RoleHost)
	player := createTestUser(t, database, "player@example.com", "s3cret-password", models.RolePlayer)

	pair := loginTestUser(t, app, "host@example.com", "s3cret-password")
	group := createTestGroup(t, app, pair.AccessToken)

	response := doJSON(t, app, http.MethodPost, "/groups/"+group.ID+"/rounds", pair.AccessToken, roundPayload(player.ID))
	defer response.Body.Close()

	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", response.StatusCode)
	}

	var round models.Round
	decodeBody(t, response.Body, &round)
	if round.Status != models.RoundStatusPending {
		t.Fatalf("status = %q, want pending", round.Status)
	}
	if round.GroupID != group.ID {
		t.Fatalf("group_id = %q, want %q", round.GroupID, group.ID)
	}
}

func TestCreateRoundRejectsNonHost(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "host@example.com", "s3cret-password", models.RoleHost)
	player := createTestUser(t, database, "player@example.com", "s3cret-password", models.RolePlayer)

	hostPair := loginTestUser(t, app, "host@example.com", "s3cret-password")
	group := createTestGroup(t, app, hostPair.AccessToken)

	playerPair := loginTestUser(t, app, "player@example.com", "s3cret-password")
	response := doJSON(t, app, http.MethodPost, "/groups/"+group.ID+"/rounds", playerPair.AccessToken, roundPayload(player.ID))
	defer response.Body.Close()

	if response.StatusCode != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d", response.StatusCode)
	}
}

func TestUpdateRoundStatusTransitions(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "host@example.com", "s3cret-password", models.RoleHost)
	player := createTestUser(t, database, "player@example.com", "s3cret-password", models.RolePlayer)

	pair := loginTestUser(t, app, "host@example.com", "s3cret-password")
	group := createTestGroup(t, app, pair.AccessToken)

	created := doJSON(t, app, http.MethodPost, "/groups/"+group.ID+"/rounds", pair.AccessToken, roundPayload(player.ID))
	var round models.Round
	decodeBody(t, created.Body, &round)
	created.Body.Close()

	response := doJSON(t, app, http.MethodPatch, "/groups/"+group.ID+"/rounds/"+round.ID+"/status", pair.AccessToken, map[string]any{
		"status": "in_progress",
	})
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	var updated models.Round
	decodeBody(t, response.Body, &updated)
	if updated.Status != models.RoundStatusInProgress {
		t.Fatalf("status = %q, want in_progress", updated.Status)
	}
}

func TestUpdateRoundStatusRejectsUnknownStatus(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "host@example.com", "s3cret-password", models.RoleHost)
	player := createTestUser(t, database, "player@example.com", "s3cret-password", models.RolePlayer)

	pair := loginTestUser(t, app, "host@example.com", "s3cret-password")
	group := createTestGroup(t, app, pair.AccessToken)

	created := doJSON(t, app, http.MethodPost, "/groups/"+group.ID+"/rounds", pair.AccessToken, roundPayload(player.ID))
	var round models.Round
	decodeBody(t, created.Body, &round)
	created.Body.Close()

	response := doJSON(t, app, http.MethodPatch, "/groups/"+group.ID+"/rounds/"+round.ID+"/status", pair.AccessToken, map[string]any{
		"status": "archived",
	})
	defer response.Body.Close()

	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400 for an unknown status, got %d", response.StatusCode)
	}
}

func TestGetRoundScopedToGroup(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "host@example.com", "s3cret-password", models.RoleHost)
	player := createTestUser(t, database, "player@example.com", "s3cret-password", models.RolePlayer)

	pair := loginTestUser(t, app, "host@example.com", "s3cret-password")
	group := createTestGroup(t, app, pair.AccessToken)

	created := doJSON(t, app, http.MethodPost, "/groups/"+group.ID+"/rounds", pair.AccessToken, roundPayload(player.ID))
	var round models.Round
	decodeBody(t, created.Body, &round)
	created.Body.Close()

	response := doJSON(t, app, http.MethodGet, "/groups/"+group.ID+"/rounds/"+round.ID, pair.AccessToken, nil)
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	var fetched models.Round
	decodeBody(t, response.Body, &fetched)
	if fetched.ID != round.ID {
		t.Fatalf("round id = %q, want %q", fetched.ID, round.ID)
	}

	other := createTestGroup(t, app, pair.AccessToken)
	foreign := doJSON(t, app, http.MethodGet, "/groups/"+other.ID+"/rounds/"+round.ID, pair.AccessToken, nil)
	defer foreign.Body.Close()
	if foreign.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404 through another group, got %d", foreign.StatusCode)
	}
}

func TestRoundReadsArePublic(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "host@example.com", "s3cret-password", models.RoleHost)
	player := createTestUser(t, database, "player@example.com", "s3cret-password", models.RolePlayer)

	pair := loginTestUser(t, app, "host@example.com", "s3cret-password")
	group := createTestGroup(t, app, pair.AccessToken)

	created := doJSON(t, app, http.MethodPost, "/groups/"+group.ID+"/rounds", pair.AccessToken, roundPayload(player.ID))
	var round models.Round
	decodeBody(t, created.Body, &round)
	created.Body.Close()

	list := doJSON(t, app, http.MethodGet, "/groups/"+group.ID+"/rounds", "", nil)
	defer list.Body.Close()
	if list.StatusCode != http.StatusOK {
		t.Fatalf("list rounds: expected status 200 without a token, got %d", list.StatusCode)
	}

	single := doJSON(t, app, http.MethodGet, "/groups/"+group.ID+"/rounds/"+round.ID, "", nil)
	defer single.Body.Close()
	if single.StatusCode != http.StatusOK {
		t.Fatalf("get round: expected status 200 without a token, got %d", single.StatusCode)
	}
}

func TestUpdateRoundStatusStillRequiresAuthentication(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "host@example.com", "s3cret-password", models.RoleHost)
	pair := loginTestUser(t, app, "host@example.com", "s3cret-password")
	group := createTestGroup(t, app, pair.AccessToken)

	response := doJSON(t, app, http.MethodPatch, "/groups/"+group.ID+"/rounds/any/status", "", map[string]any{
		"status": "in_progress",
	})
	defer response.Body.Close()

	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected status 401 without a token, got %d", response.StatusCode)
	}
}

func TestListRoundsOrdersByTurn(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "host@example.com", "s3cret-password", models.RoleHost)
	player := createTestUser(t, database, "player@example.com", "s3cret-password", models.RolePlayer)

	pair := loginTestUser(t, app, "host@example.com", "s3cret-password")
	group := createTestGroup(t, app, pair.AccessToken)

	for _, turn := range []int{2, 1} {
		payload := roundPayload(player.ID)
		payload["turn_number"] = turn
		response := doJSON(t, app, http.MethodPost, "/groups/"+group.ID+"/rounds", pair.AccessToken, payload)
		response.Body.Close()
	}

	response := doJSON(t, app, http.MethodGet, "/groups/"+group.ID+"/rounds", pair.AccessToken, nil)
	defer response.Body.Close()

	var rounds []models.Round
	decodeBody(t, response.Body, &rounds)
	if len(rounds) != 2 {
		t.Fatalf("expected 2 rounds, got %d", len(rounds))
	}
	if rounds[0].TurnNumber != 1 || rounds[1].TurnNumber != 2 {
		t.Fatalf("expected rounds ordered by turn, got %d then %d", rounds[0].TurnNumber, rounds[1].TurnNumber)
	}
}

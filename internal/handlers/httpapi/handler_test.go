package httpapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/gleasonw/lidnd/internal/auth"
	"github.com/gleasonw/lidnd/internal/engine/turnorder"
	"github.com/gleasonw/lidnd/internal/entities"
	"github.com/gleasonw/lidnd/internal/errors"
	"github.com/gleasonw/lidnd/internal/handlers/httpapi"
	channelrepo "github.com/gleasonw/lidnd/internal/repositories/channels"
	creatureservice "github.com/gleasonw/lidnd/internal/services/creature"
	creaturemock "github.com/gleasonw/lidnd/internal/services/creature/mock"
	encounterservice "github.com/gleasonw/lidnd/internal/services/encounter"
	encountermock "github.com/gleasonw/lidnd/internal/services/encounter/mock"
	"github.com/gleasonw/lidnd/internal/testutils"
)

const (
	testToken = "valid-token"
	testUser  = "user-1"
)

// staticValidator accepts exactly one token.
type staticValidator struct{}

func (staticValidator) Validate(_ context.Context, token string) (*auth.Principal, error) {
	if token != testToken {
		return nil, errors.Unauthenticated("invalid token")
	}
	return &auth.Principal{ID: testUser, Username: "gm"}, nil
}

type HandlerTestSuite struct {
	suite.Suite

	ctrl       *gomock.Controller
	encounters *encountermock.MockService
	creatures  *creaturemock.MockService
	cleanup    func()
	server     http.Handler
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.encounters = encountermock.NewMockService(s.ctrl)
	s.creatures = creaturemock.NewMockService(s.ctrl)

	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup
	channels, err := channelrepo.NewRedis(&channelrepo.RedisConfig{Client: client})
	s.Require().NoError(err)

	handler, err := httpapi.New(&httpapi.Config{
		Encounters: s.encounters,
		Creatures:  s.creatures,
		Channels:   channels,
		Auth:       staticValidator{},
	})
	s.Require().NoError(err)
	s.server = handler.Routes()
}

func (s *HandlerTestSuite) TearDownTest() {
	s.cleanup()
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+testToken)
	rec := httptest.NewRecorder()
	s.server.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerTestSuite) TestMissingTokenRejected() {
	req := httptest.NewRequest(http.MethodGet, "/api/encounters", nil)
	rec := httptest.NewRecorder()
	s.server.ServeHTTP(rec, req)

	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *HandlerTestSuite) TestInvalidTokenRejected() {
	req := httptest.NewRequest(http.MethodGet, "/api/encounters", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	rec := httptest.NewRecorder()
	s.server.ServeHTTP(rec, req)

	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *HandlerTestSuite) TestCreateEncounter() {
	s.encounters.EXPECT().
		CreateEncounter(gomock.Any(), &encounterservice.CreateEncounterInput{
			OwnerID:     testUser,
			Name:        "Goblin Ambush",
			Description: "On the road",
		}).
		Return(&encounterservice.CreateEncounterOutput{
			Encounter: &entities.Encounter{ID: "enc-1", OwnerID: testUser, Name: "Goblin Ambush"},
		}, nil)

	rec := s.do(http.MethodPost, "/api/encounters",
		`{"name":"Goblin Ambush","description":"On the road"}`)

	s.Equal(http.StatusCreated, rec.Code)

	var got entities.Encounter
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Equal("enc-1", got.ID)
}

func (s *HandlerTestSuite) TestGetEncounterNotFound() {
	s.encounters.EXPECT().
		GetEncounter(gomock.Any(), gomock.Any()).
		Return(nil, errors.NotFound("encounter enc-404 not found"))

	rec := s.do(http.MethodGet, "/api/encounters/enc-404", "")

	s.Equal(http.StatusNotFound, rec.Code)

	var body struct {
		Code string `json:"code"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("NOT_FOUND", body.Code)
}

func (s *HandlerTestSuite) TestAdvanceTurnPassesDirection() {
	s.encounters.EXPECT().
		AdvanceTurn(gomock.Any(), &encounterservice.AdvanceTurnInput{
			OwnerID:     testUser,
			EncounterID: "enc-1",
			Direction:   turnorder.Previous,
		}).
		Return(&encounterservice.AdvanceTurnOutput{ActiveParticipantID: "part-2"}, nil)

	rec := s.do(http.MethodPost, "/api/encounters/enc-1/turn?to=previous", "")

	s.Equal(http.StatusOK, rec.Code)

	var out encounterservice.AdvanceTurnOutput
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &out))
	s.Equal("part-2", out.ActiveParticipantID)
}

func (s *HandlerTestSuite) TestDoubleStartMapsToConflict() {
	s.encounters.EXPECT().
		StartEncounter(gomock.Any(), gomock.Any()).
		Return(nil, errors.FailedPrecondition("encounter already started"))

	rec := s.do(http.MethodPost, "/api/encounters/enc-1/start", "")

	s.Equal(http.StatusConflict, rec.Code)
}

func (s *HandlerTestSuite) TestUpdateParticipant() {
	s.encounters.EXPECT().
		UpdateParticipant(gomock.Any(), &encounterservice.UpdateParticipantInput{
			OwnerID:       testUser,
			EncounterID:   "enc-1",
			ParticipantID: "part-1",
			HP:            5,
			Initiative:    12,
		}).
		Return(&encounterservice.UpdateParticipantOutput{
			Participant: &entities.ParticipantView{
				Participant:  entities.Participant{ID: "part-1", HP: 5, Initiative: 12},
				CreatureName: "Goblin",
				MaxHP:        7,
			},
		}, nil)

	rec := s.do(http.MethodPut, "/api/encounters/enc-1/participants/part-1",
		`{"hp":5,"initiative":12}`)

	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlerTestSuite) TestRemoveParticipant() {
	s.encounters.EXPECT().
		RemoveParticipant(gomock.Any(), &encounterservice.RemoveParticipantInput{
			OwnerID:       testUser,
			EncounterID:   "enc-1",
			ParticipantID: "part-1",
		}).
		Return(&encounterservice.RemoveParticipantOutput{}, nil)

	rec := s.do(http.MethodDelete, "/api/encounters/enc-1/participants/part-1", "")

	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *HandlerTestSuite) TestImportMonster() {
	s.creatures.EXPECT().
		ImportMonster(gomock.Any(), &creatureservice.ImportMonsterInput{
			OwnerID:    testUser,
			MonsterKey: "goblin",
		}).
		Return(&creatureservice.ImportMonsterOutput{
			Creature: &entities.Creature{ID: "cre-1", Name: "Goblin", MaxHP: 7},
		}, nil)

	rec := s.do(http.MethodPost, "/api/creatures/import/goblin", "")

	s.Equal(http.StatusCreated, rec.Code)
}

func (s *HandlerTestSuite) TestListCreaturesPassesFilters() {
	s.creatures.EXPECT().
		ListCreatures(gomock.Any(), &creatureservice.ListCreaturesInput{
			OwnerID:            testUser,
			NameFilter:         "gob",
			ExcludeEncounterID: "enc-1",
		}).
		Return(&creatureservice.ListCreaturesOutput{}, nil)

	rec := s.do(http.MethodGet, "/api/creatures?name=gob&exclude_encounter=enc-1", "")

	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlerTestSuite) TestSetTrackedChannel() {
	rec := s.do(http.MethodPut, "/api/channels", `{"channel_id":"chan-9"}`)
	s.Equal(http.StatusOK, rec.Code)

	var got channelrepo.TrackedChannel
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Equal("chan-9", got.ChannelID)
	s.Equal(testUser, got.UserID)
}

func (s *HandlerTestSuite) TestSetTrackedChannelRequiresChannelID() {
	rec := s.do(http.MethodPut, "/api/channels", `{}`)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

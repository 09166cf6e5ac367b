package creature_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/gleasonw/lidnd/internal/clients/srd"
	"github.com/gleasonw/lidnd/internal/entities"
	"github.com/gleasonw/lidnd/internal/errors"
	creatureorch "github.com/gleasonw/lidnd/internal/orchestrators/creature"
	"github.com/gleasonw/lidnd/internal/pkg/clock"
	"github.com/gleasonw/lidnd/internal/pkg/idgen"
	creaturerepo "github.com/gleasonw/lidnd/internal/repositories/creatures"
	encounterrepo "github.com/gleasonw/lidnd/internal/repositories/encounters"
	creatureservice "github.com/gleasonw/lidnd/internal/services/creature"
	"github.com/gleasonw/lidnd/internal/testutils"
)

const ownerID = "user-1"

type mockSRDClient struct {
	mock.Mock
}

func (m *mockSRDClient) GetMonster(ctx context.Context, key string) (*srd.MonsterData, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*srd.MonsterData), args.Error(1)
}

func (m *mockSRDClient) ListMonsters(ctx context.Context) ([]*srd.MonsterRef, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*srd.MonsterRef), args.Error(1)
}

type OrchestratorTestSuite struct {
	suite.Suite

	ctx           context.Context
	cleanup       func()
	srdClient     *mockSRDClient
	encounterRepo encounterrepo.Repository
	orch          *creatureorch.Orchestrator
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctx = context.Background()

	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup

	creatures, err := creaturerepo.NewRedis(&creaturerepo.RedisConfig{Client: client})
	s.Require().NoError(err)
	encounters, err := encounterrepo.NewRedis(&encounterrepo.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.encounterRepo = encounters

	s.srdClient = &mockSRDClient{}

	orch, err := creatureorch.New(&creatureorch.Config{
		CreatureRepo:  creatures,
		EncounterRepo: encounters,
		IDGenerator:   idgen.NewSequential("id-"),
		Clock:         clock.NewFixed(time.Date(2024, 3, 1, 18, 0, 0, 0, time.UTC)),
		SRDClient:     s.srdClient,
	})
	s.Require().NoError(err)
	s.orch = orch
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *OrchestratorTestSuite) create(name string, maxHP int) *entities.Creature {
	out, err := s.orch.CreateCreature(s.ctx, &creatureservice.CreateCreatureInput{
		OwnerID: ownerID,
		Name:    name,
		MaxHP:   maxHP,
	})
	s.Require().NoError(err)
	return out.Creature
}

func (s *OrchestratorTestSuite) TestCreateAndGet() {
	created := s.create("Goblin", 7)

	got, err := s.orch.GetCreature(s.ctx, &creatureservice.GetCreatureInput{
		OwnerID:    ownerID,
		CreatureID: created.ID,
	})
	s.Require().NoError(err)
	s.Equal("Goblin", got.Creature.Name)
	s.Equal(7, got.Creature.MaxHP)
}

func (s *OrchestratorTestSuite) TestCreateRejectsNonPositiveHP() {
	_, err := s.orch.CreateCreature(s.ctx, &creatureservice.CreateCreatureInput{
		OwnerID: ownerID,
		Name:    "Wisp",
		MaxHP:   0,
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestCreateStoresImages() {
	out, err := s.orch.CreateCreature(s.ctx, &creatureservice.CreateCreatureInput{
		OwnerID:   ownerID,
		Name:      "Dragon",
		MaxHP:     200,
		Icon:      []byte("icon-bytes"),
		StatBlock: []byte("statblock-bytes"),
	})
	s.Require().NoError(err)

	images, err := s.orch.GetCreatureImages(s.ctx, &creatureservice.GetCreatureImagesInput{
		OwnerID:    ownerID,
		CreatureID: out.Creature.ID,
	})
	s.Require().NoError(err)
	s.Equal([]byte("icon-bytes"), images.Icon)
	s.Equal([]byte("statblock-bytes"), images.StatBlock)
}

func (s *OrchestratorTestSuite) TestListFiltersByName() {
	s.create("Goblin", 7)
	s.create("Goblin Boss", 21)
	s.create("Ogre", 59)

	out, err := s.orch.ListCreatures(s.ctx, &creatureservice.ListCreaturesInput{
		OwnerID:    ownerID,
		NameFilter: "goblin",
	})
	s.Require().NoError(err)
	s.Len(out.Creatures, 2)
}

func (s *OrchestratorTestSuite) TestListExcludesEncounterParticipants() {
	inEncounter := s.create("Goblin", 7)
	free := s.create("Ogre", 59)

	encOut, err := s.encounterRepo.Create(s.ctx, &encounterrepo.CreateInput{
		Encounter: &entities.Encounter{
			ID:      "enc-1",
			OwnerID: ownerID,
			Name:    "Ambush",
		},
	})
	s.Require().NoError(err)
	_, err = s.encounterRepo.AddParticipant(s.ctx, &encounterrepo.AddParticipantInput{
		EncounterID: encOut.Encounter.ID,
		OwnerID:     ownerID,
		Participant: &entities.Participant{
			ID:          "part-1",
			CreatureID:  inEncounter.ID,
			EncounterID: encOut.Encounter.ID,
			HP:          7,
		},
	})
	s.Require().NoError(err)

	out, err := s.orch.ListCreatures(s.ctx, &creatureservice.ListCreaturesInput{
		OwnerID:            ownerID,
		ExcludeEncounterID: encOut.Encounter.ID,
	})
	s.Require().NoError(err)
	s.Require().Len(out.Creatures, 1)
	s.Equal(free.ID, out.Creatures[0].ID)
}

func (s *OrchestratorTestSuite) TestUpdateCreature() {
	created := s.create("Goblin", 7)

	out, err := s.orch.UpdateCreature(s.ctx, &creatureservice.UpdateCreatureInput{
		OwnerID:         ownerID,
		CreatureID:      created.ID,
		Name:            "Hobgoblin",
		MaxHP:           11,
		ChallengeRating: 0.5,
	})
	s.Require().NoError(err)
	s.Equal("Hobgoblin", out.Creature.Name)
	s.Equal(11, out.Creature.MaxHP)
}

func (s *OrchestratorTestSuite) TestDeleteCreature() {
	created := s.create("Goblin", 7)

	_, err := s.orch.DeleteCreature(s.ctx, &creatureservice.DeleteCreatureInput{
		OwnerID:    ownerID,
		CreatureID: created.ID,
	})
	s.Require().NoError(err)

	_, err = s.orch.GetCreature(s.ctx, &creatureservice.GetCreatureInput{
		OwnerID:    ownerID,
		CreatureID: created.ID,
	})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestOwnershipEnforced() {
	created := s.create("Goblin", 7)

	_, err := s.orch.GetCreature(s.ctx, &creatureservice.GetCreatureInput{
		OwnerID:    "someone-else",
		CreatureID: created.ID,
	})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestImportMonster() {
	s.srdClient.On("GetMonster", mock.Anything, "adult-red-dragon").Return(&srd.MonsterData{
		Key:             "adult-red-dragon",
		Name:            "Adult Red Dragon",
		HitPoints:       256,
		ChallengeRating: 17,
	}, nil)

	out, err := s.orch.ImportMonster(s.ctx, &creatureservice.ImportMonsterInput{
		OwnerID:    ownerID,
		MonsterKey: "adult-red-dragon",
	})
	s.Require().NoError(err)

	s.Equal("Adult Red Dragon", out.Creature.Name)
	s.Equal(256, out.Creature.MaxHP)
	s.InDelta(17, out.Creature.ChallengeRating, 0.001)
	s.False(out.Creature.IsPlayer)
	s.srdClient.AssertExpectations(s.T())
}

func (s *OrchestratorTestSuite) TestImportMonsterUpstreamFailure() {
	s.srdClient.On("GetMonster", mock.Anything, "tarrasque").
		Return(nil, errors.Unavailable("SRD API unreachable"))

	_, err := s.orch.ImportMonster(s.ctx, &creatureservice.ImportMonsterInput{
		OwnerID:    ownerID,
		MonsterKey: "tarrasque",
	})
	s.Require().Error(err)
	s.Equal(errors.CodeUnavailable, errors.GetCode(err))
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

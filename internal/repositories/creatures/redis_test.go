package creatures_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/gleasonw/lidnd/internal/entities"
	"github.com/gleasonw/lidnd/internal/errors"
	"github.com/gleasonw/lidnd/internal/repositories/creatures"
	"github.com/gleasonw/lidnd/internal/testutils"
)

const testOwnerID = "user_42"

type RedisRepositoryTestSuite struct {
	suite.Suite
	repo    creatures.Repository
	cleanup func()
	ctx     context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup

	repo, err := creatures.NewRedis(&creatures.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) createCreature(id, name string, maxHP int) {
	_, err := s.repo.Create(s.ctx, &creatures.CreateInput{
		Creature: &entities.Creature{
			ID:      id,
			OwnerID: testOwnerID,
			Name:    name,
			MaxHP:   maxHP,
		},
	})
	s.Require().NoError(err)
}

func (s *RedisRepositoryTestSuite) TestCreateAndGet() {
	s.createCreature("c1", "Goblin", 7)

	out, err := s.repo.Get(s.ctx, &creatures.GetInput{CreatureID: "c1", OwnerID: testOwnerID})
	s.Require().NoError(err)
	s.Equal("Goblin", out.Creature.Name)
	s.Equal(7, out.Creature.MaxHP)
}

func (s *RedisRepositoryTestSuite) TestGetWrongOwnerIsNotFound() {
	s.createCreature("c1", "Goblin", 7)

	_, err := s.repo.Get(s.ctx, &creatures.GetInput{CreatureID: "c1", OwnerID: "intruder"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestListFilters() {
	s.createCreature("c1", "Goblin", 7)
	s.createCreature("c2", "Goblin Boss", 21)
	s.createCreature("c3", "Owlbear", 59)

	out, err := s.repo.List(s.ctx, &creatures.ListInput{
		OwnerID:    testOwnerID,
		NameFilter: "goblin",
	})
	s.Require().NoError(err)
	s.Len(out.Creatures, 2)

	out, err = s.repo.List(s.ctx, &creatures.ListInput{
		OwnerID:            testOwnerID,
		ExcludeCreatureIDs: map[string]struct{}{"c1": {}, "c3": {}},
	})
	s.Require().NoError(err)
	s.Len(out.Creatures, 1)
	s.Equal("c2", out.Creatures[0].ID)
}

func (s *RedisRepositoryTestSuite) TestUpdate() {
	s.createCreature("c1", "Goblin", 7)

	out, err := s.repo.Update(s.ctx, &creatures.UpdateInput{
		CreatureID:      "c1",
		OwnerID:         testOwnerID,
		Name:            "Hobgoblin",
		MaxHP:           11,
		ChallengeRating: 0.5,
	})
	s.Require().NoError(err)
	s.Equal("Hobgoblin", out.Creature.Name)
	s.Equal(11, out.Creature.MaxHP)
	s.InDelta(0.5, out.Creature.ChallengeRating, 0.001)
}

func (s *RedisRepositoryTestSuite) TestImagesRoundTrip() {
	s.createCreature("c1", "Goblin", 7)

	icon := []byte{0x89, 'P', 'N', 'G'}
	statBlock := []byte{0x89, 'P', 'N', 'G', '2'}

	_, err := s.repo.SetImages(s.ctx, &creatures.SetImagesInput{
		CreatureID: "c1",
		OwnerID:    testOwnerID,
		Icon:       icon,
		StatBlock:  statBlock,
	})
	s.Require().NoError(err)

	out, err := s.repo.GetImages(s.ctx, &creatures.GetImagesInput{
		CreatureID: "c1",
		OwnerID:    testOwnerID,
	})
	s.Require().NoError(err)
	s.Equal(icon, out.Icon)
	s.Equal(statBlock, out.StatBlock)
}

func (s *RedisRepositoryTestSuite) TestDeleteRemovesImagesAndIndex() {
	s.createCreature("c1", "Goblin", 7)
	_, err := s.repo.SetImages(s.ctx, &creatures.SetImagesInput{
		CreatureID: "c1",
		OwnerID:    testOwnerID,
		Icon:       []byte{1},
	})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, &creatures.DeleteInput{CreatureID: "c1", OwnerID: testOwnerID})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, &creatures.GetInput{CreatureID: "c1", OwnerID: testOwnerID})
	s.True(errors.IsNotFound(err))

	list, err := s.repo.List(s.ctx, &creatures.ListInput{OwnerID: testOwnerID})
	s.Require().NoError(err)
	s.Empty(list.Creatures)
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

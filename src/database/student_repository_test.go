package database

import (
	"context"
	"errors"
	"testing"

	"student-portal/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestSearchFilter(t *testing.T) {
	t.Run("empty query matches everything", func(t *testing.T) {
		assert.Equal(t, bson.M{}, SearchFilter(""))
	})

	t.Run("ors the searchable fields", func(t *testing.T) {
		filter := SearchFilter("ali")
		or, ok := filter["$or"].(bson.A)
		require.True(t, ok)
		require.Len(t, or, len(SearchFields))

		for i, field := range SearchFields {
			clause := or[i].(bson.M)
			assert.Equal(t, bson.M{"$regex": "ali", "$options": "i"}, clause[field])
		}
	})

	t.Run("escapes regex metacharacters", func(t *testing.T) {
		filter := SearchFilter("a.b+(c)")
		clause := filter["$or"].(bson.A)[0].(bson.M)
		assert.Equal(t, `a\.b\+\(c\)`, clause["firstName"].(bson.M)["$regex"])
	})
}

func TestStudentRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ns := "student_portal.students"

	mt.Run("FindAll decodes every document", func(mt *mtest.T) {
		repo := NewStudentRepository(mt.Coll)
		id1, id2 := primitive.NewObjectID(), primitive.NewObjectID()

		first := mtest.CreateCursorResponse(1, ns, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: id1}, {Key: "firstName", Value: "Jane"}, {Key: "gpa", Value: 3.2}},
			bson.D{{Key: "_id", Value: id2}, {Key: "firstName", Value: nil}},
		)
		last := mtest.CreateCursorResponse(0, ns, mtest.NextBatch)
		mt.AddMockResponses(first, last)

		students, err := repo.FindAll(context.Background())
		require.NoError(mt, err)
		require.Len(mt, students, 2)
		assert.Equal(mt, id1, students[0].ID)
		require.NotNil(mt, students[0].FirstName)
		assert.Equal(mt, "Jane", *students[0].FirstName)
		assert.Equal(mt, 3.2, *students[0].GPA)
		assert.Nil(mt, students[1].FirstName)
	})

	mt.Run("year decodes from int and fractional values", func(mt *mtest.T) {
		repo := NewStudentRepository(mt.Coll)
		first := mtest.CreateCursorResponse(1, ns, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "year", Value: int32(3)}},
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "year", Value: 2.5}},
		)
		mt.AddMockResponses(first, mtest.CreateCursorResponse(0, ns, mtest.NextBatch))

		students, err := repo.FindAll(context.Background())
		require.NoError(mt, err)
		require.Len(mt, students, 2)
		assert.Equal(mt, 3.0, *students[0].Year)
		assert.Equal(mt, 2.5, *students[1].Year)
	})

	mt.Run("FindAll on empty collection is an empty slice", func(mt *mtest.T) {
		repo := NewStudentRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		students, err := repo.FindAll(context.Background())
		require.NoError(mt, err)
		assert.NotNil(mt, students)
		assert.Empty(mt, students)
	})

	mt.Run("FindByID not found wraps ErrNoDocuments", func(mt *mtest.T) {
		repo := NewStudentRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := repo.FindByID(context.Background(), primitive.NewObjectID())
		assert.True(mt, errors.Is(err, mongo.ErrNoDocuments))
	})

	mt.Run("Insert returns generated id", func(mt *mtest.T) {
		repo := NewStudentRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		name := "Jane"
		id, err := repo.Insert(context.Background(), &models.Student{FirstName: &name})
		require.NoError(mt, err)
		assert.False(mt, id.IsZero())
	})

	mt.Run("UpdateFields reports matched", func(mt *mtest.T) {
		repo := NewStudentRepository(mt.Coll)
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}),
		)

		matched, err := repo.UpdateFields(context.Background(), primitive.NewObjectID(), bson.M{"status": "graduated"})
		require.NoError(mt, err)
		assert.True(mt, matched)

		matched, err = repo.UpdateFields(context.Background(), primitive.NewObjectID(), bson.M{"status": "graduated"})
		require.NoError(mt, err)
		assert.False(mt, matched)
	})

	mt.Run("Delete reports deleted", func(mt *mtest.T) {
		repo := NewStudentRepository(mt.Coll)
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}),
		)

		deleted, err := repo.Delete(context.Background(), primitive.NewObjectID())
		require.NoError(mt, err)
		assert.True(mt, deleted)

		deleted, err = repo.Delete(context.Background(), primitive.NewObjectID())
		require.NoError(mt, err)
		assert.False(mt, deleted)
	})

	mt.Run("store errors are returned", func(mt *mtest.T) {
		repo := NewStudentRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Message: "bad value",
			Name:    "BadValue",
		}))

		_, err := repo.Search(context.Background(), "ali")
		assert.Error(mt, err)
	})
}

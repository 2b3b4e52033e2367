package database

import (
	"context"
	"fmt"
	"regexp"

	"student-portal/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// SearchFields ฟิลด์ที่ใช้ค้นหา (OR กัน)
var SearchFields = []string{"firstName", "lastName", "email", "studentId"}

// StudentRepository เข้าถึง collection students
type StudentRepository struct {
	coll *mongo.Collection
}

func NewStudentRepository(coll *mongo.Collection) *StudentRepository {
	return &StudentRepository{coll: coll}
}

func (r *StudentRepository) FindAll(ctx context.Context) ([]models.Student, error) {
	return r.find(ctx, bson.M{})
}

func (r *StudentRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Student, error) {
	var student models.Student
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&student); err != nil {
		return nil, fmt.Errorf("find student %s: %w", id.Hex(), err)
	}
	return &student, nil
}

func (r *StudentRepository) Insert(ctx context.Context, student *models.Student) (primitive.ObjectID, error) {
	result, err := r.coll.InsertOne(ctx, student)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert student: %w", err)
	}
	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("insert student: unexpected id type %T", result.InsertedID)
	}
	return id, nil
}

func (r *StudentRepository) UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (bool, error) {
	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return false, fmt.Errorf("update student %s: %w", id.Hex(), err)
	}
	return result.MatchedCount > 0, nil
}

func (r *StudentRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("delete student %s: %w", id.Hex(), err)
	}
	return result.DeletedCount > 0, nil
}

func (r *StudentRepository) Search(ctx context.Context, query string) ([]models.Student, error) {
	return r.find(ctx, SearchFilter(query))
}

func (r *StudentRepository) find(ctx context.Context, filter bson.M) ([]models.Student, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find students: %w", err)
	}
	defer cursor.Close(ctx)

	students := []models.Student{}
	if err := cursor.All(ctx, &students); err != nil {
		return nil, fmt.Errorf("decode students: %w", err)
	}
	return students, nil
}

// SearchFilter สร้าง filter แบบ substring ไม่สนตัวพิมพ์ query ว่างได้ filter ว่าง (ทุกเอกสาร)
func SearchFilter(query string) bson.M {
	if query == "" {
		return bson.M{}
	}

	regex := bson.M{"$regex": regexp.QuoteMeta(query), "$options": "i"}
	or := make(bson.A, 0, len(SearchFields))
	for _, field := range SearchFields {
		or = append(or, bson.M{field: regex})
	}
	return bson.M{"$or": or}
}

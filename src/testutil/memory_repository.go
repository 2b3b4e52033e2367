// Package testutil มี helper สำหรับเทสต์ที่ไม่ต้องต่อ MongoDB จริง
package testutil

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"student-portal/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MemoryStudentRepository เก็บนักศึกษาไว้ใน memory ตามลำดับการ insert
//
// Err ถ้ากำหนดไว้ ทุก method จะคืน error นี้ (จำลอง store ล่ม)
type MemoryStudentRepository struct {
	mu    sync.Mutex
	docs  map[primitive.ObjectID]models.Student
	order []primitive.ObjectID

	Err error
}

func NewMemoryStudentRepository() *MemoryStudentRepository {
	return &MemoryStudentRepository{docs: map[primitive.ObjectID]models.Student{}}
}

// ErrStoreUnavailable ใช้กับ Err เพื่อจำลอง store ที่ติดต่อไม่ได้
var ErrStoreUnavailable = errors.New("server selection timeout")

func (r *MemoryStudentRepository) FindAll(ctx context.Context) ([]models.Student, error) {
	return r.filter(func(models.Student) bool { return true })
}

func (r *MemoryStudentRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}

	student, ok := r.docs[id]
	if !ok {
		return nil, fmt.Errorf("find student %s: %w", id.Hex(), mongo.ErrNoDocuments)
	}
	return &student, nil
}

func (r *MemoryStudentRepository) Insert(ctx context.Context, student *models.Student) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return primitive.NilObjectID, r.Err
	}

	stored := *student
	stored.ID = primitive.NewObjectID()
	r.docs[stored.ID] = stored
	r.order = append(r.order, stored.ID)
	return stored.ID, nil
}

// UpdateFields ทำงานเหมือน $set โดย round-trip ผ่าน BSON
func (r *MemoryStudentRepository) UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return false, r.Err
	}

	student, ok := r.docs[id]
	if !ok {
		return false, nil
	}

	raw, err := bson.Marshal(student)
	if err != nil {
		return false, err
	}
	doc := bson.M{}
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return false, err
	}
	for key, val := range fields {
		doc[key] = val
	}
	if raw, err = bson.Marshal(doc); err != nil {
		return false, err
	}

	var updated models.Student
	if err := bson.Unmarshal(raw, &updated); err != nil {
		return false, err
	}
	r.docs[id] = updated
	return true, nil
}

func (r *MemoryStudentRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return false, r.Err
	}

	if _, ok := r.docs[id]; !ok {
		return false, nil
	}
	delete(r.docs, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true, nil
}

func (r *MemoryStudentRepository) Search(ctx context.Context, query string) ([]models.Student, error) {
	q := strings.ToLower(query)
	return r.filter(func(s models.Student) bool {
		for _, field := range []*string{s.FirstName, s.LastName, s.Email, s.StudentID} {
			if field != nil && strings.Contains(strings.ToLower(*field), q) {
				return true
			}
		}
		return false
	})
}

// Len จำนวนเอกสารที่เก็บอยู่
func (r *MemoryStudentRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.docs)
}

func (r *MemoryStudentRepository) filter(match func(models.Student) bool) ([]models.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}

	students := []models.Student{}
	for _, id := range r.order {
		if student := r.docs[id]; match(student) {
			students = append(students, student)
		}
	}
	return students, nil
}

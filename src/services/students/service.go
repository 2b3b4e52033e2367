package students

import (
	"context"
	"errors"
	"fmt"
	"time"

	"student-portal/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// DefaultStatus สถานะเริ่มต้นเมื่อสร้างนักศึกษาโดยไม่ระบุ status
const DefaultStatus = "active"

// ErrStudentNotFound id ผิดรูปแบบ หรือไม่พบเอกสาร
var ErrStudentNotFound = errors.New("student not found")

// Repository คือ collection ของนักศึกษา
//
// FindByID คืน mongo.ErrNoDocuments (ห่อด้วย %w ได้) เมื่อไม่พบเอกสาร
type Repository interface {
	FindAll(ctx context.Context) ([]models.Student, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Student, error)
	Insert(ctx context.Context, student *models.Student) (primitive.ObjectID, error)
	UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (bool, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
	Search(ctx context.Context, query string) ([]models.Student, error)
}

type Service struct {
	repo    Repository
	timeout time.Duration
	now     func() time.Time
}

func NewService(repo Repository, timeout time.Duration) *Service {
	return &Service{
		repo:    repo,
		timeout: timeout,
		now:     time.Now,
	}
}

// WithClock ใช้ในเทสต์เพื่อกำหนดเวลา
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *Service) timestamp() string {
	return s.now().UTC().Format(time.RFC3339Nano)
}

// ListStudents ดึงนักศึกษาทั้งหมดตามลำดับของ store
func (s *Service) ListStudents(ctx context.Context) ([]models.Student, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	students, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if students == nil {
		students = []models.Student{}
	}
	return students, nil
}

// GetStudentByID ดึงนักศึกษาตาม id (ObjectID hex)
func (s *Service) GetStudentByID(ctx context.Context, id string) (*models.Student, error) {
	objID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return s.findOne(ctx, objID)
}

// CreateStudent บันทึกนักศึกษาใหม่ ฟิลด์ที่ไม่ส่งมาจะเป็น null ยกเว้น gpa, status, enrollmentDate
func (s *Service) CreateStudent(ctx context.Context, in models.StudentInput) (*models.Student, error) {
	now := s.timestamp()
	student := &models.Student{
		FirstName:      in.FirstName.Ptr(),
		LastName:       in.LastName.Ptr(),
		Email:          in.Email.Ptr(),
		StudentID:      in.StudentID.Ptr(),
		Course:         in.Course.Ptr(),
		Year:           in.Year.Ptr(),
		GPA:            in.GPA.OrDefault(0.0),
		EnrollmentDate: in.EnrollmentDate.OrDefault(now),
		Status:         in.Status.OrDefault(DefaultStatus),
		CreatedAt:      now,
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	id, err := s.repo.Insert(ctx, student)
	if err != nil {
		return nil, err
	}
	student.ID = id
	return student, nil
}

// UpdateStudent เขียนทับเฉพาะฟิลด์ที่ส่งมา (null = ล้างค่า) แล้วอ่านเอกสารกลับมา
func (s *Service) UpdateStudent(ctx context.Context, id string, in models.StudentInput) (*models.Student, error) {
	objID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	fields := UpdateFields(in)
	fields["updatedAt"] = s.timestamp()

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	matched, err := s.repo.UpdateFields(ctx, objID, fields)
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, ErrStudentNotFound
	}

	// not atomic with the update; a concurrent delete surfaces as not found
	return s.findOne(ctx, objID)
}

// DeleteStudent ลบนักศึกษาตาม id
func (s *Service) DeleteStudent(ctx context.Context, id string) error {
	objID, err := parseID(id)
	if err != nil {
		return err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	deleted, err := s.repo.Delete(ctx, objID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrStudentNotFound
	}
	return nil
}

// SearchStudents ค้นหาแบบ substring ไม่สนตัวพิมพ์ใน firstName, lastName, email, studentId
func (s *Service) SearchStudents(ctx context.Context, query string) ([]models.Student, error) {
	if query == "" {
		return s.ListStudents(ctx)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	students, err := s.repo.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	if students == nil {
		students = []models.Student{}
	}
	return students, nil
}

func (s *Service) findOne(ctx context.Context, id primitive.ObjectID) (*models.Student, error) {
	student, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrStudentNotFound
	}
	if err != nil {
		return nil, err
	}
	return student, nil
}

func parseID(id string) (primitive.ObjectID, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %v", ErrStudentNotFound, err)
	}
	return objID, nil
}

// UpdateFields แปลง payload เป็นเอกสาร $set เฉพาะฟิลด์ที่แก้ไขได้
func UpdateFields(in models.StudentInput) bson.M {
	fields := bson.M{}
	setField(fields, "firstName", in.FirstName)
	setField(fields, "lastName", in.LastName)
	setField(fields, "email", in.Email)
	setField(fields, "studentId", in.StudentID)
	setField(fields, "course", in.Course)
	setField(fields, "year", in.Year)
	setField(fields, "gpa", in.GPA)
	setField(fields, "status", in.Status)
	return fields
}

func setField[T any](fields bson.M, key string, value models.Nullable[T]) {
	if !value.Present {
		return
	}
	if !value.Valid {
		fields[key] = nil
		return
	}
	fields[key] = value.Value
}

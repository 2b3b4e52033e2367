package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Student นักศึกษา 1 รายการใน collection students
//
// ทุกฟิลด์ที่ client ส่งมาเป็น pointer เพราะเก็บค่า null ได้
type Student struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id" swaggertype:"string" example:"665f1c2e9b1e8a3d4c2b1a00"`
	FirstName      *string            `bson:"firstName" json:"firstName" example:"Jane"`
	LastName       *string            `bson:"lastName" json:"lastName" example:"Doe"`
	Email          *string            `bson:"email" json:"email" example:"jane.doe@example.com"`
	StudentID      *string            `bson:"studentId" json:"studentId" example:"S1"`
	Course         *string            `bson:"course" json:"course" example:"Computer Science"`
	Year           *float64           `bson:"year" json:"year" example:"2"`
	GPA            *float64           `bson:"gpa" json:"gpa" example:"3.5"`
	EnrollmentDate *string            `bson:"enrollmentDate" json:"enrollmentDate" example:"2026-09-01T00:00:00Z"`
	Status         *string            `bson:"status" json:"status" example:"active"`
	CreatedAt      string             `bson:"createdAt" json:"createdAt"`
	UpdatedAt      string             `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// StudentInput payload ที่ client ส่งมาตอน create / update
type StudentInput struct {
	FirstName      Nullable[string]  `json:"firstName" swaggertype:"string"`
	LastName       Nullable[string]  `json:"lastName" swaggertype:"string"`
	Email          Nullable[string]  `json:"email" swaggertype:"string"`
	StudentID      Nullable[string]  `json:"studentId" swaggertype:"string"`
	Course         Nullable[string]  `json:"course" swaggertype:"string"`
	Year           Nullable[float64] `json:"year" swaggertype:"number"`
	GPA            Nullable[float64] `json:"gpa" swaggertype:"number"`
	EnrollmentDate Nullable[string]  `json:"enrollmentDate" swaggertype:"string"`
	Status         Nullable[string]  `json:"status" swaggertype:"string"`
}

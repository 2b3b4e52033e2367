package models

// ErrorResponse โครงสร้างมาตรฐานสำหรับการส่ง Error
type ErrorResponse struct {
	Error string `json:"error" example:"Student not found"`
}

// MessageResponse ข้อความยืนยันผลการทำงาน
type MessageResponse struct {
	Message string `json:"message" example:"Student deleted successfully"`
}

// HealthResponse ผลของ /api/health
type HealthResponse struct {
	Status  string `json:"status" example:"healthy"`
	Message string `json:"message" example:"API is running"`
}

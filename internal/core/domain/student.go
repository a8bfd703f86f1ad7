package domain

import "errors"

var ErrStudentNotFound = errors.New("student not found")
var ErrStudentExists = errors.New("student already exists")
var ErrInvalidDate = errors.New("date must be in DD/MM/YYYY format")
var ErrInvalidData = errors.New("invalid data")

// Student is an attendance record keyed by StudentID. The ID is immutable
// once created: updates replace every other field but never rename.
type Student struct {
	StudentID   string `json:"studentID"`
	StudentName string `json:"studentName"`
	CourseName  string `json:"courseName"`
	Date        Date   `json:"date"`
}

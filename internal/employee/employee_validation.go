package employee

import (
	"regexp"
	"strings"

	employeeerrors "github.com/omsaini-1441/HRMS-backend/internal/employee/errors"
)

const (
	DefaultPosition   = "Intern"
	DefaultDepartment = "Default"
)

// Positions is the closed set of allowed position values.
var Positions = []string{
	"Senior Developer",
	"Human Resource Lead",
	"Designer",
	"Full Stack Developer",
	"Frontend Developer",
	"Backend Developer",
	"Product Manager",
	"Intern",
}

// Departments is the closed set of allowed department values.
var Departments = []string{
	"Human Resource",
	"Developer",
	"Designer",
	"Default",
}

var phonePattern = regexp.MustCompile(`^\+?[\d\s-]{10,15}$`)

func ValidatePosition(v string) error {
	for _, p := range Positions {
		if v == p {
			return nil
		}
	}
	return employeeerrors.ErrInvalidPosition
}

func ValidateDepartment(v string) error {
	for _, d := range Departments {
		if v == d {
			return nil
		}
	}
	return employeeerrors.ErrInvalidDepartment
}

func ValidatePhone(v string) error {
	if !phonePattern.MatchString(v) {
		return employeeerrors.ErrInvalidPhone
	}
	return nil
}

func ValidateFullName(v string) error {
	if len(strings.TrimSpace(v)) < 2 {
		return employeeerrors.ErrFullNameTooShort
	}
	return nil
}

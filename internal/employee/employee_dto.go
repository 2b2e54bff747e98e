package employee

import "io"

const DateLayout = "2006-01-02"

// EmployeeRequest binds both JSON bodies and multipart forms.
type EmployeeRequest struct {
	EmployeeID   string  `json:"employee_id" form:"employee_id"`
	Name         string  `json:"name" form:"name" binding:"required"`
	Designation  *string `json:"designation" form:"designation"`
	DOB          *string `json:"dob" form:"dob"`
	JoiningDate  *string `json:"joining_date" form:"joining_date"`
	PayrollName  *string `json:"payroll_name" form:"payroll_name"`
	Team         *string `json:"team" form:"team"`
	Grade        *string `json:"grade" form:"grade"`
	ProfileImage *string `json:"profile_image" form:"profile_image"`
	Password     *string `json:"password" form:"password"`
	PL           *int    `json:"pl" form:"pl" binding:"omitempty,min=0"`
	CL           *int    `json:"cl" form:"cl" binding:"omitempty,min=0"`
	SL           *int    `json:"sl" form:"sl" binding:"omitempty,min=0"`
	EL           *int    `json:"el" form:"el" binding:"omitempty,min=0"`
}

// ImageUpload is an uploaded image file. The caller owns and closes Body.
type ImageUpload struct {
	Filename string
	Size     int64
	Body     io.Reader
}

type EmployeeResponse struct {
	ID           int64   `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	Name         string  `json:"name"`
	Designation  *string `json:"designation"`
	DOB          *string `json:"dob"`
	JoiningDate  *string `json:"joining_date"`
	PayrollName  *string `json:"payroll_name"`
	Team         *string `json:"team"`
	Grade        *string `json:"grade"`
	ProfileImage *string `json:"profile_image"`
	PL           int     `json:"pl"`
	CL           int     `json:"cl"`
	SL           int     `json:"sl"`
	EL           int     `json:"el"`
	CreatedAt    string  `json:"created_at"`
}

type ProfileImageResponse struct {
	EmployeeID   string `json:"employee_id"`
	ProfileImage string `json:"profile_image"`
}

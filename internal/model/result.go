package model

// SubjectGrade is one subject's grade entry within a result record.
type SubjectGrade struct {
	Code     string `json:"code" bson:"code"`
	Semester string `json:"semester" bson:"semester"`
	Grade    string `json:"grade" bson:"grade"`
}

// ResultRecord is one student's persisted academic record, keyed by the
// unique roll number. Pass/Fail status is never persisted; it is computed on
// the read path.
type ResultRecord struct {
	RollNo   string         `json:"rollNo" bson:"rollNo"`
	Name     string         `json:"name" bson:"name"`
	DOB      string         `json:"dob" bson:"dob"`
	Course   string         `json:"course" bson:"course"`
	Subjects []SubjectGrade `json:"subjects" bson:"subjects"`
}

// SubjectGradeRequest is one subject entry in a manual save payload.
type SubjectGradeRequest struct {
	Code     string `json:"code" binding:"required,max=32"`
	Semester string `json:"semester" binding:"required,max=32"`
	Grade    string `json:"grade" binding:"required,max=8"`
}

// SaveResultRequest is the payload for the admin manual-entry endpoint.
// A record must carry at least one subject.
type SaveResultRequest struct {
	RollNo   string                `json:"rollNo" binding:"required,max=32"`
	Name     string                `json:"name" binding:"required,max=100"`
	DOB      string                `json:"dob" binding:"required,max=32"`
	Course   string                `json:"course" binding:"required,course"`
	Subjects []SubjectGradeRequest `json:"subjects" binding:"required,min=1,max=25,dive"`
}

// Record converts the request into a persistable record.
func (r *SaveResultRequest) Record() *ResultRecord {
	subjects := make([]SubjectGrade, 0, len(r.Subjects))
	for _, s := range r.Subjects {
		subjects = append(subjects, SubjectGrade{
			Code:     s.Code,
			Semester: s.Semester,
			Grade:    s.Grade,
		})
	}
	return &ResultRecord{
		RollNo:   r.RollNo,
		Name:     r.Name,
		DOB:      r.DOB,
		Course:   r.Course,
		Subjects: subjects,
	}
}

// SubjectResult is one evaluated subject entry in a student-facing response.
type SubjectResult struct {
	Code     string `json:"code"`
	Semester string `json:"semester"`
	Grade    string `json:"grade"`
	Status   string `json:"status"`
}

// StudentResult is the student-facing view of a record with per-subject
// Pass/Fail status attached.
type StudentResult struct {
	RollNo  string          `json:"rollNo"`
	Name    string          `json:"name"`
	DOB     string          `json:"dob"`
	Course  string          `json:"course"`
	Results []SubjectResult `json:"results"`
}

// LoginRequest is the payload for admin authentication.
type LoginRequest struct {
	Username string `json:"username" binding:"required,max=64"`
	Password string `json:"password" binding:"required,max=128"`
}

// VerifyOTPRequest is the payload for the second login step.
type VerifyOTPRequest struct {
	Code string `json:"code" binding:"required,min=4,max=10"`
}

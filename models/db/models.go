package dbmodels

// AllModels lists every table in foreign-key order, for migrations and
// test databases.
func AllModels() []interface{} {
	return []interface{}{
		&Department{},
		&Employee{},
		&Topic{},
		&SubTopic{},
		&RequestType{},
		&Status{},
		&Priority{},
		&Program{},
		&RatingQuestion{},
		&Request{},
		&Approval{},
		&Subtask{},
		&DepartmentAssignment{},
		&EmployeeAssignment{},
		&RequestFile{},
		&UATRecord{},
		&Rating{},
		&RatingScore{},
	}
}

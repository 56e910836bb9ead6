package dbmodels

// RequestFile is an attachment row. The stored name is the S3 object key;
// rows are immutable once written.
type RequestFile struct {
	BaseModel
	RequestID    string `gorm:"type:varchar(36);index" json:"request_id"`
	OriginalName string `gorm:"type:varchar(512)" json:"original_name"`
	StoredName   string `gorm:"type:varchar(64);uniqueIndex" json:"stored_name"`
	ContentType  string `gorm:"type:varchar(128)" json:"content_type"`
	Size         int64  `json:"size"`
}

package model

type Image struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	Filename   string `json:"filename" gorm:"not null"`        // 原始文件名
	StoredName string `json:"stored_name" gorm:"not null;unique"` // uuid 前缀的落盘文件名
	Path       string `json:"path" gorm:"not null;unique"`
	Size       int64  `json:"size" gorm:"not null"`
	MimeType   string `json:"mime_type" gorm:"not null"`
	UploadedAt int64  `json:"uploaded_at" gorm:"not null;index"`
}

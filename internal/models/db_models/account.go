package db_models

type Account struct {
	BaseModel
	Name         string `gorm:"size:100"`
	Email        string `gorm:"size:256;unique"`
	PasswordHash string
}

package models

type Guardian struct {
	ID          uint   `json:"id" gorm:"primary_key"`
	Name        string `json:"name"`
	Email       string `json:"email" gorm:"unique"`
	Password    string `json:"-"`
	Lang        string `json:"lang"`
	DeviceToken string `json:"device_token"`
}

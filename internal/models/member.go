// internal/models/member.go
package models

import (
	"golang.org/x/crypto/bcrypt"
)

// Member is a supplier or client company. Clients point at their supplier through
// MotherCode, which holds the supplier's ClassificationCode.
type Member struct {
	BaseModel
	LoginID            string     `json:"loginId" gorm:"uniqueIndex;size:50;not null"`
	PasswordHash       string     `json:"-" gorm:"column:password;size:255;not null"`
	ClassificationCode string     `json:"classificationCode" gorm:"index;size:50;not null"`
	MotherCode         string     `json:"motherCode" gorm:"index;size:50"`
	CompanyName        string     `json:"companyName" gorm:"size:255;not null"`
	Grade              Grade      `json:"grade" gorm:"index;not null"`
	Withdrawal         Withdrawal `json:"withDrawal" gorm:"column:with_drawal;type:varchar(1);default:'N';not null"`
	ManagerName        string     `json:"managerName" gorm:"size:100"`
	Phone              string     `json:"phone" gorm:"size:30"`
	Email              string     `json:"email" gorm:"size:255"`
	Address            string     `json:"address" gorm:"size:500"`
}

func (m *Member) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	m.PasswordHash = string(hashedPassword)
	return nil
}

func (m *Member) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(m.PasswordHash), []byte(password))
}

func (m *Member) IsSupplier() bool {
	return m.Grade == GradeSupplier
}

func (m *Member) IsClient() bool {
	return m.Grade == GradeClient
}

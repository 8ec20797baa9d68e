package models

import (
	"time"

	"github.com/MGTheTrain/crypto-utils/internal/domain/keys"
)

// CryptoKeyModel is the GORM database model for key metadata
type CryptoKeyModel struct {
	ID              string    `gorm:"primaryKey;type:varchar(36)"`
	KeyPairID       string    `gorm:"not null;index;type:varchar(36)"`
	Algorithm       string    `gorm:"not null;type:varchar(20)"`
	KeySize         uint32    `gorm:"type:integer"`
	Type            string    `gorm:"not null;type:varchar(20)"`
	Encoding        string    `gorm:"not null;type:varchar(8)"`
	FilePath        string    `gorm:"not null;type:varchar(1024)"`
	DateTimeCreated time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (CryptoKeyModel) TableName() string {
	return "crypto_keys"
}

// ToDomain converts the GORM model to the domain entity
func (m *CryptoKeyModel) ToDomain() *keys.CryptoKeyMeta {
	return &keys.CryptoKeyMeta{
		ID:              m.ID,
		KeyPairID:       m.KeyPairID,
		Algorithm:       m.Algorithm,
		KeySize:         m.KeySize,
		Type:            m.Type,
		Encoding:        m.Encoding,
		FilePath:        m.FilePath,
		DateTimeCreated: m.DateTimeCreated,
	}
}

// FromDomain converts the domain entity to the GORM model
func (m *CryptoKeyModel) FromDomain(k *keys.CryptoKeyMeta) {
	m.ID = k.ID
	m.KeyPairID = k.KeyPairID
	m.Algorithm = k.Algorithm
	m.KeySize = k.KeySize
	m.Type = k.Type
	m.Encoding = k.Encoding
	m.FilePath = k.FilePath
	m.DateTimeCreated = k.DateTimeCreated
}

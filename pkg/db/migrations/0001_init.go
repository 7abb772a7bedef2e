package migrations

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

func init() {
	goose.AddMigrationContext(upInit, downInit)
}

// The structs below freeze the schema as of this migration. They are
// intentionally independent of internal/models so later model changes go
// through new migrations.

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:text;not null"`
	Surname      string    `gorm:"type:text;not null"`
	UserName     string    `gorm:"type:text;not null"`
	Email        string    `gorm:"type:text;uniqueIndex;not null"`
	Role         string    `gorm:"type:text;not null"`
	PasswordHash string    `gorm:"type:text;not null"`
	CreatedAt    time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime"`
	UpdatedAt    time.Time `gorm:"type:timestamptz;not null;default:now();autoUpdateTime"`
}

type Family struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:text;uniqueIndex;not null"`
	CreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime"`
	UpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoUpdateTime"`
}

type FamilyMember struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FamilyID  uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_family_user"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_family_user"`
	Type      int       `gorm:"not null"`
	CreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime"`
	Family    Family    `gorm:"foreignKey:FamilyID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	User      User      `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

type Income struct {
	ID             uuid.UUID    `gorm:"type:uuid;primaryKey"`
	FamilyMemberID uuid.UUID    `gorm:"type:uuid;not null;index"`
	Title          string       `gorm:"type:text;not null"`
	Category       int          `gorm:"not null"`
	Amount         float64      `gorm:"type:double precision;not null"`
	Description    string       `gorm:"type:text"`
	Time           time.Time    `gorm:"type:timestamptz;not null"`
	CreatedAt      time.Time    `gorm:"type:timestamptz;not null;default:now();autoCreateTime"`
	UpdatedAt      time.Time    `gorm:"type:timestamptz;not null;default:now();autoUpdateTime"`
	FamilyMember   FamilyMember `gorm:"foreignKey:FamilyMemberID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

type Expense struct {
	ID             uuid.UUID    `gorm:"type:uuid;primaryKey"`
	FamilyMemberID uuid.UUID    `gorm:"type:uuid;not null;index"`
	Title          string       `gorm:"type:text;not null"`
	Category       int          `gorm:"not null"`
	Amount         float64      `gorm:"type:double precision;not null"`
	Description    string       `gorm:"type:text"`
	Time           time.Time    `gorm:"type:timestamptz;not null"`
	CreatedAt      time.Time    `gorm:"type:timestamptz;not null;default:now();autoCreateTime"`
	UpdatedAt      time.Time    `gorm:"type:timestamptz;not null;default:now();autoUpdateTime"`
	FamilyMember   FamilyMember `gorm:"foreignKey:FamilyMemberID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

type RefreshSession struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Token     string    `gorm:"type:text;uniqueIndex;not null"`
	ExpiresAt time.Time `gorm:"type:timestamptz;not null"`
	CreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime"`
	User      User      `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func upInit(ctx context.Context, tx *sql.Tx) error {
	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: tx, PreferSimpleProtocol: true}), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{SingularTable: false},
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return err
	}

	if err := gormDB.WithContext(ctx).AutoMigrate(
		&User{},
		&Family{},
		&FamilyMember{},
		&Income{},
		&Expense{},
		&RefreshSession{},
	); err != nil {
		return err
	}

	m := gormDB.WithContext(ctx).Migrator()
	if err := m.CreateConstraint(&FamilyMember{}, "Family"); err != nil {
		return err
	}
	if err := m.CreateConstraint(&FamilyMember{}, "User"); err != nil {
		return err
	}
	if err := m.CreateConstraint(&Income{}, "FamilyMember"); err != nil {
		return err
	}
	if err := m.CreateConstraint(&Expense{}, "FamilyMember"); err != nil {
		return err
	}
	if err := m.CreateConstraint(&RefreshSession{}, "User"); err != nil {
		return err
	}

	return nil
}

func downInit(ctx context.Context, tx *sql.Tx) error {
	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: tx, PreferSimpleProtocol: true}), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{SingularTable: false},
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return err
	}

	if err := gormDB.WithContext(ctx).Migrator().DropTable(
		&RefreshSession{},
		&Expense{},
		&Income{},
		&FamilyMember{},
		&Family{},
		&User{},
	); err != nil {
		return err
	}

	return nil
}

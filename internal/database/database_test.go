package database

import (
	"testing"

	"social-dashboard/internal/config"
	"social-dashboard/internal/models"
)

func TestInitDBInMemory(t *testing.T) {
	db, err := InitDB(&config.DatabaseConfig{Type: "sqlite", Path: ":memory:"})
	if err != nil {
		t.Fatalf("init db: %v", err)
	}
	t.Cleanup(func() { _ = Close(db) })

	if err := db.Create(&models.Notification{Panel: "accounts", Title: "Cuenta añadida"}).Error; err != nil {
		t.Fatalf("create notification: %v", err)
	}

	var count int64
	if err := db.Model(&models.Notification{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 notification, got %d", count)
	}
}

func TestInitDBUnsupportedType(t *testing.T) {
	if _, err := InitDB(&config.DatabaseConfig{Type: "postgres"}); err == nil {
		t.Fatal("expected error for unsupported type")
	}
}

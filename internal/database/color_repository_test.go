package database

import (
	"context"
	"testing"
)

func TestInsertColor(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	defer db.Close()
	repo := NewRepository(db)

	color, err := repo.InsertColor(context.Background(), "#1A2B3C", 1700000000000)
	if err != nil {
		t.Fatalf("Failed to insert color: %v", err)
	}

	if color.ID <= 0 {
		t.Errorf("Expected positive ID, got %d", color.ID)
	}
	if color.Code != "#1A2B3C" {
		t.Errorf("Expected code '#1A2B3C', got '%s'", color.Code)
	}
	if color.Time != 1700000000000 {
		t.Errorf("Expected time 1700000000000, got %d", color.Time)
	}
}

func TestInsertColor_AssignsIncreasingIDs(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	defer db.Close()
	repo := NewRepository(db)
	ctx := context.Background()

	first, err := repo.InsertColor(ctx, "#000000", 1)
	if err != nil {
		t.Fatalf("Failed to insert first color: %v", err)
	}
	second, err := repo.InsertColor(ctx, "#000000", 2)
	if err != nil {
		t.Fatalf("Failed to insert second color: %v", err)
	}

	if second.ID <= first.ID {
		t.Errorf("Expected second ID > first ID, got %d <= %d", second.ID, first.ID)
	}
}

func TestGetAllColors_Empty(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	defer db.Close()
	repo := NewRepository(db)

	colors, err := repo.GetAllColors(context.Background())
	if err != nil {
		t.Fatalf("Failed to get colors: %v", err)
	}

	if colors == nil {
		t.Error("Expected empty slice, got nil")
	}
	if len(colors) != 0 {
		t.Errorf("Expected 0 colors, got %d", len(colors))
	}
}

func TestGetAllColors_InsertionOrder(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	defer db.Close()
	repo := NewRepository(db)
	ctx := context.Background()

	codes := []string{"#FF0000", "#00FF00", "#0000FF"}
	for i, code := range codes {
		if _, err := repo.InsertColor(ctx, code, int64(100+i)); err != nil {
			t.Fatalf("Failed to insert %s: %v", code, err)
		}
	}

	colors, err := repo.GetAllColors(ctx)
	if err != nil {
		t.Fatalf("Failed to get colors: %v", err)
	}

	if len(colors) != len(codes) {
		t.Fatalf("Expected %d colors, got %d", len(codes), len(colors))
	}
	for i, code := range codes {
		if colors[i].Code != code {
			t.Errorf("Position %d: expected %s, got %s", i, code, colors[i].Code)
		}
		if colors[i].Time != int64(100+i) {
			t.Errorf("Position %d: expected time %d, got %d", i, 100+i, colors[i].Time)
		}
	}
}

func TestCountColors(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	defer db.Close()
	repo := NewRepository(db)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		if _, err := repo.InsertColor(ctx, "#ABCDEF", int64(i)); err != nil {
			t.Fatalf("Failed to insert color: %v", err)
		}
	}

	count, err := repo.CountColors(ctx)
	if err != nil {
		t.Fatalf("Failed to count colors: %v", err)
	}
	if count != 4 {
		t.Errorf("Expected 4 colors, got %d", count)
	}
}

func TestGetAllColors_ClosedDB(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewRepository(db)

	if err := repo.Close(); err != nil {
		t.Fatalf("Failed to close repository: %v", err)
	}

	if _, err := repo.GetAllColors(context.Background()); err == nil {
		t.Error("Expected error querying a closed database, got nil")
	}
}

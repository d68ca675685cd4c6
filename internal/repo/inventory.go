package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pantrylog/pantrylog/internal/domain"
	"github.com/pantrylog/pantrylog/internal/measure"
)

// InventoryRepo defines the persistence operations for InventoryItems.
type InventoryRepo interface {
	// Create inserts a new inventory item and returns the persisted record.
	Create(ctx context.Context, item domain.InventoryItem) (domain.InventoryItem, error)

	// GetByID retrieves an item by its UUID primary key.
	// Returns domain.ErrNotFound if no item with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.InventoryItem, error)

	// ListPaged returns one page of items ordered by name, plus the total count.
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.InventoryItem, int64, error)

	// Update overwrites the mutable fields of an existing item and returns the
	// updated record. Returns domain.ErrNotFound if it does not exist.
	Update(ctx context.Context, item domain.InventoryItem) (domain.InventoryItem, error)

	// Delete removes an item by ID. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgInventoryRepo is the Postgres implementation of InventoryRepo.
type pgInventoryRepo struct {
	db    db
	units *measure.Registry
}

// NewInventoryRepo constructs an InventoryRepo backed by the provided db connection.
func NewInventoryRepo(db db, units *measure.Registry) InventoryRepo {
	return &pgInventoryRepo{db: db, units: units}
}

// Create inserts a new inventory row and returns the full persisted record.
func (r *pgInventoryRepo) Create(ctx context.Context, item domain.InventoryItem) (domain.InventoryItem, error) {
	const q = `
		INSERT INTO inventory_items (name, quantity, unit, storage_location)
		VALUES (@name, @quantity, @unit, @storage_location)
		RETURNING id, name, quantity, unit, storage_location, created_at, updated_at`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{
		"name":             item.Name,
		"quantity":         item.Quantity,
		"unit":             item.Unit.Name(),
		"storage_location": item.StorageLocation,
	})
	result, err := r.scanItem(row)
	if err != nil {
		return domain.InventoryItem{}, fmt.Errorf("repo.InventoryRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves an inventory item by primary key.
func (r *pgInventoryRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.InventoryItem, error) {
	const q = `
		SELECT id, name, quantity, unit, storage_location, created_at, updated_at
		FROM inventory_items
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := r.scanItem(row)
	if err != nil {
		return domain.InventoryItem{}, fmt.Errorf("repo.InventoryRepo.GetByID: %w", err)
	}
	return result, nil
}

// ListPaged returns one page of inventory items ordered by name.
func (r *pgInventoryRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.InventoryItem, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM inventory_items`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.InventoryRepo.ListPaged: count: %w", err)
	}

	const q = `
		SELECT id, name, quantity, unit, storage_location, created_at, updated_at
		FROM inventory_items
		ORDER BY name, id
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": p.Limit, "offset": p.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.InventoryRepo.ListPaged: %w", err)
	}
	defer rows.Close()

	var items []domain.InventoryItem
	for rows.Next() {
		item, err := r.scanItem(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repo.InventoryRepo.ListPaged: scan: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.InventoryRepo.ListPaged: rows: %w", err)
	}
	return items, total, nil
}

// Update overwrites the mutable fields of an item and returns the updated record.
func (r *pgInventoryRepo) Update(ctx context.Context, item domain.InventoryItem) (domain.InventoryItem, error) {
	const q = `
		UPDATE inventory_items
		SET name             = @name,
		    quantity         = @quantity,
		    unit             = @unit,
		    storage_location = @storage_location,
		    updated_at       = now()
		WHERE id = @id
		RETURNING id, name, quantity, unit, storage_location, created_at, updated_at`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{
		"id":               item.ID,
		"name":             item.Name,
		"quantity":         item.Quantity,
		"unit":             item.Unit.Name(),
		"storage_location": item.StorageLocation,
	})
	result, err := r.scanItem(row)
	if err != nil {
		return domain.InventoryItem{}, fmt.Errorf("repo.InventoryRepo.Update: %w", err)
	}
	return result, nil
}

// Delete removes an inventory item by primary key.
func (r *pgInventoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM inventory_items WHERE id = @id`, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.InventoryRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.InventoryRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanItem maps a single inventory_items row into a domain.InventoryItem,
// resolving the stored unit text back through the registry so the rehydrated
// value passes the same constructor as fresh input.
func (r *pgInventoryRepo) scanItem(s scanner) (domain.InventoryItem, error) {
	var (
		id       pgtype.UUID
		name     string
		quantity float64
		unitText string
		location string
		item     domain.InventoryItem
	)

	err := s.Scan(&id, &name, &quantity, &unitText, &location, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.InventoryItem{}, domain.ErrNotFound
		}
		return domain.InventoryItem{}, err
	}

	unit, err := r.units.Resolve(unitText)
	if err != nil {
		return domain.InventoryItem{}, fmt.Errorf("stored unit %q: %w", unitText, err)
	}
	sub, err := domain.NewSubstance(name, quantity, unit)
	if err != nil {
		return domain.InventoryItem{}, err
	}
	item.ID = uuid.UUID(id.Bytes)
	item.Substance = sub
	item.StorageLocation = location
	return item, nil
}

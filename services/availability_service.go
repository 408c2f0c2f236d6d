package services

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/restaurant-concierge/models"
	"github.com/yeremiapane/restaurant-concierge/utils"
	"gorm.io/gorm"
)

// TableView -> meja beserta ketersediaan yang sudah dihitung (tidak disimpan)
type TableView struct {
	ID          uint `json:"id"`
	TableNumber int  `json:"table_number"`
	Seats       int  `json:"seats"`
	IsAvailable bool `json:"is_available"`
}

type ReservationInput struct {
	CustomerName string `json:"customer_name" validate:"required"`
	TableNumber  int    `json:"table_number" validate:"gt=0"`
	Date         string `json:"date" validate:"required"`
	Time         string `json:"time" validate:"required"`
}

type TableInput struct {
	TableNumber int   `json:"table_number" validate:"gt=0"`
	Seats       int   `json:"seats" validate:"gt=0"`
	IsAvailable *bool `json:"is_available"`
}

// TableUpdate -> field nil tidak diubah
type TableUpdate struct {
	TableNumber *int  `json:"table_number" validate:"omitempty,gt=0"`
	Seats       *int  `json:"seats" validate:"omitempty,gt=0"`
	IsAvailable *bool `json:"is_available"`
}

// AvailabilityService menjaga flag global is_available di tabel meja tetap konsisten
// dengan reservasi, dan menjawab query ketersediaan per tanggal.
type AvailabilityService struct {
	db       *gorm.DB
	notifier Notifier
}

func NewAvailabilityService(db *gorm.DB, notifier Notifier) *AvailabilityService {
	return &AvailabilityService{
		db:       db,
		notifier: notifierOrNoop(notifier),
	}
}

// ListTablesWithAvailability tanpa tanggal memakai flag yang tersimpan. Dengan tanggal,
// ketersediaan dihitung dari reservasi aktif pada tanggal itu dan mengabaikan flag global.
func (s *AvailabilityService) ListTablesWithAvailability(ctx context.Context, date string) ([]TableView, error) {
	tables, err := s.listTables(ctx)
	if err != nil {
		return nil, err
	}

	date = strings.TrimSpace(date)
	if date == "" {
		views := make([]TableView, 0, len(tables))
		for _, t := range tables {
			views = append(views, toView(t, t.IsAvailable))
		}
		return views, nil
	}

	reserved, err := s.reservedTableNumbers(ctx, date)
	if err != nil {
		return nil, err
	}

	views := make([]TableView, 0, len(tables))
	for _, t := range tables {
		_, taken := reserved[t.TableNumber]
		views = append(views, toView(t, !taken))
	}
	return views, nil
}

// ListBookableTables -> meja yang akan diterima oleh CreateReservation untuk tanggal tsb:
// flag global true dan belum ada reservasi aktif pada tanggal itu.
func (s *AvailabilityService) ListBookableTables(ctx context.Context, date string) ([]TableView, error) {
	tables, err := s.listTables(ctx)
	if err != nil {
		return nil, err
	}

	reserved, err := s.reservedTableNumbers(ctx, strings.TrimSpace(date))
	if err != nil {
		return nil, err
	}

	views := make([]TableView, 0, len(tables))
	for _, t := range tables {
		if !t.IsAvailable {
			continue
		}
		if _, taken := reserved[t.TableNumber]; taken {
			continue
		}
		views = append(views, toView(t, true))
	}
	return views, nil
}

// CreateReservation menyimpan reservasi (confirmed) lalu menandai meja tidak tersedia.
// Keduanya dalam satu transaksi; update flag bersyarat (is_available = true) sehingga
// dua booking bersamaan untuk meja yang sama tidak bisa sama-sama berhasil.
func (s *AvailabilityService) CreateReservation(ctx context.Context, input ReservationInput) (*models.Reservation, error) {
	input.CustomerName = strings.TrimSpace(input.CustomerName)
	input.Date = strings.TrimSpace(input.Date)
	input.Time = strings.TrimSpace(input.Time)
	if err := validateInput(input); err != nil {
		return nil, err
	}

	var reservation models.Reservation
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var table models.Table
		if err := tx.Where("table_number = ?", input.TableNumber).First(&table).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("table %d not found", input.TableNumber)
			}
			return unavailable("failed to load table", err)
		}
		if !table.IsAvailable {
			return conflict("table %d is not available", input.TableNumber)
		}

		var active int64
		if err := tx.Model(&models.Reservation{}).
			Where("table_number = ? AND date = ? AND status <> ?", input.TableNumber, input.Date, models.ReservationCancelled).
			Count(&active).Error; err != nil {
			return unavailable("failed to check reservations", err)
		}
		if active > 0 {
			return conflict("table %d is already reserved on %s", input.TableNumber, input.Date)
		}

		reservation = models.Reservation{
			CustomerName: input.CustomerName,
			TableNumber:  input.TableNumber,
			Date:         input.Date,
			Time:         input.Time,
			Status:       models.ReservationConfirmed,
		}
		if err := tx.Create(&reservation).Error; err != nil {
			return unavailable("failed to save reservation", err)
		}

		res := tx.Model(&models.Table{}).
			Where("id = ? AND is_available = ?", table.ID, true).
			Update("is_available", false)
		if res.Error != nil {
			return unavailable("failed to update table", res.Error)
		}
		if res.RowsAffected == 0 {
			return conflict("table %d was booked by someone else", input.TableNumber)
		}
		return nil
	})
	if err != nil {
		return nil, unavailable("failed to create reservation", err)
	}

	utils.InfoLogger.WithFields(logrus.Fields{
		"reservation_id": reservation.ID,
		"table_number":   reservation.TableNumber,
		"date":           reservation.Date,
	}).Info("reservation created")

	s.notifier.Broadcast(EventReservationCreate, reservation)
	return &reservation, nil
}

// CancelReservation menghapus reservasi (hard delete) dan mengembalikan flag meja ke
// tersedia. Meja yang sudah dihapus bukan error.
func (s *AvailabilityService) CancelReservation(ctx context.Context, id uint) error {
	var reservation models.Reservation
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&reservation, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("reservation %d not found", id)
			}
			return unavailable("failed to load reservation", err)
		}

		if err := tx.Delete(&reservation).Error; err != nil {
			return unavailable("failed to delete reservation", err)
		}

		res := tx.Model(&models.Table{}).
			Where("table_number = ?", reservation.TableNumber).
			Update("is_available", true)
		if res.Error != nil {
			return unavailable("failed to update table", res.Error)
		}
		if res.RowsAffected == 0 {
			utils.InfoLogger.Warnf("Reservation %d referenced missing table %d", reservation.ID, reservation.TableNumber)
		}
		return nil
	})
	if err != nil {
		return unavailable("failed to cancel reservation", err)
	}

	utils.InfoLogger.WithFields(logrus.Fields{
		"reservation_id": reservation.ID,
		"table_number":   reservation.TableNumber,
	}).Info("reservation cancelled")

	s.notifier.Broadcast(EventReservationCancel, reservation)
	return nil
}

// ListReservations -> terbaru dulu (date desc, time desc)
func (s *AvailabilityService) ListReservations(ctx context.Context) ([]models.Reservation, error) {
	var reservations []models.Reservation
	if err := s.db.WithContext(ctx).Order("date DESC").Order("time DESC").Find(&reservations).Error; err != nil {
		return nil, unavailable("failed to list reservations", err)
	}
	return reservations, nil
}

// CreateTable -> admin menambahkan meja, default tersedia
func (s *AvailabilityService) CreateTable(ctx context.Context, input TableInput) (*models.Table, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	table := models.Table{
		TableNumber: input.TableNumber,
		Seats:       input.Seats,
		IsAvailable: true,
	}
	if input.IsAvailable != nil {
		table.IsAvailable = *input.IsAvailable
	}

	db := s.db.WithContext(ctx)
	if err := s.ensureNumberFree(db, input.TableNumber, 0); err != nil {
		return nil, err
	}
	if err := db.Create(&table).Error; err != nil {
		return nil, unavailable("failed to create table", err)
	}

	utils.InfoLogger.Printf("New table created: %d (seats=%d, available=%t)", table.TableNumber, table.Seats, table.IsAvailable)
	s.notifier.Broadcast(EventTableCreate, table)
	return &table, nil
}

// UpdateTable -> override admin, last write wins terhadap alur reservasi
func (s *AvailabilityService) UpdateTable(ctx context.Context, id uint, input TableUpdate) (*models.Table, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	db := s.db.WithContext(ctx)
	var table models.Table
	if err := db.First(&table, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("table %d not found", id)
		}
		return nil, unavailable("failed to load table", err)
	}

	if input.TableNumber != nil && *input.TableNumber != table.TableNumber {
		if err := s.ensureNumberFree(db, *input.TableNumber, table.ID); err != nil {
			return nil, err
		}
		table.TableNumber = *input.TableNumber
	}
	if input.Seats != nil {
		table.Seats = *input.Seats
	}
	if input.IsAvailable != nil {
		table.IsAvailable = *input.IsAvailable
	}

	if err := db.Save(&table).Error; err != nil {
		return nil, unavailable("failed to update table", err)
	}

	utils.InfoLogger.Printf("Table %d updated (available=%t)", table.TableNumber, table.IsAvailable)
	s.notifier.Broadcast(EventTableUpdate, table)
	return &table, nil
}

// DeleteTable -> reservasi yang merujuk meja ini dibiarkan
func (s *AvailabilityService) DeleteTable(ctx context.Context, id uint) error {
	db := s.db.WithContext(ctx)
	var table models.Table
	if err := db.First(&table, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("table %d not found", id)
		}
		return unavailable("failed to load table", err)
	}
	if err := db.Delete(&table).Error; err != nil {
		return unavailable("failed to delete table", err)
	}

	utils.InfoLogger.Printf("Table %d deleted", table.TableNumber)
	s.notifier.Broadcast(EventTableDelete, map[string]interface{}{
		"id":           table.ID,
		"table_number": table.TableNumber,
	})
	return nil
}

func (s *AvailabilityService) ensureNumberFree(db *gorm.DB, number int, exceptID uint) error {
	var count int64
	if err := db.Model(&models.Table{}).
		Where("table_number = ? AND id <> ?", number, exceptID).
		Count(&count).Error; err != nil {
		return unavailable("failed to check table number", err)
	}
	if count > 0 {
		return conflict("table number %d already exists", number)
	}
	return nil
}

func (s *AvailabilityService) listTables(ctx context.Context) ([]models.Table, error) {
	var tables []models.Table
	if err := s.db.WithContext(ctx).Order("table_number ASC").Find(&tables).Error; err != nil {
		return nil, unavailable("failed to list tables", err)
	}
	return tables, nil
}

func (s *AvailabilityService) reservedTableNumbers(ctx context.Context, date string) (map[int]struct{}, error) {
	var reservations []models.Reservation
	if err := s.db.WithContext(ctx).
		Where("date = ?", date).
		Find(&reservations).Error; err != nil {
		return nil, unavailable("failed to list reservations", err)
	}

	reserved := make(map[int]struct{}, len(reservations))
	for _, r := range reservations {
		if !r.IsActive() {
			continue
		}
		reserved[r.TableNumber] = struct{}{}
	}
	return reserved, nil
}

func toView(t models.Table, available bool) TableView {
	return TableView{
		ID:          t.ID,
		TableNumber: t.TableNumber,
		Seats:       t.Seats,
		IsAvailable: available,
	}
}

package doctor

import (
	"context"
	"fmt"
	"strings"

	doctorRepo "github.com/ArafatSadi1/doctors-portal/database/repository/doctor"
	"github.com/ArafatSadi1/doctors-portal/models"
	"github.com/ArafatSadi1/doctors-portal/utils"

	"go.uber.org/zap"
)

// DoctorService manages the doctor directory. All operations are admin only; the gate
// runs before these are called.
type DoctorService interface {
	ListDoctors(ctx context.Context) ([]models.Doctor, error)
	AddDoctor(ctx context.Context, doctor models.Doctor) (*models.InsertResult, error)
	RemoveDoctor(ctx context.Context, email string) (*models.DeleteResult, error)
}

type DefaultDoctorService struct {
	Repo   doctorRepo.DoctorRepository
	Logger *zap.Logger
}

func NewDefaultDoctorService(repo doctorRepo.DoctorRepository, logger *zap.Logger) *DefaultDoctorService {
	return &DefaultDoctorService{Repo: repo, Logger: logger}
}

func (s *DefaultDoctorService) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	return s.Repo.GetAll(ctx)
}

// AddDoctor inserts a doctor. A duplicate email surfaces as utils.ErrConflict.
func (s *DefaultDoctorService) AddDoctor(ctx context.Context, doctor models.Doctor) (*models.InsertResult, error) {
	doctor.Email = strings.TrimSpace(doctor.Email)
	doctor.Name = strings.TrimSpace(doctor.Name)
	if doctor.Email == "" || doctor.Name == "" {
		return nil, fmt.Errorf("%w: doctor name and email are required", utils.ErrBadRequest)
	}

	result, err := s.Repo.Create(ctx, &doctor)
	if err != nil {
		return nil, err
	}
	s.Logger.Info("AddDoctor: doctor added", zap.String("email", doctor.Email), zap.String("specialty", doctor.Specialty))
	return result, nil
}

func (s *DefaultDoctorService) RemoveDoctor(ctx context.Context, email string) (*models.DeleteResult, error) {
	result, err := s.Repo.DeleteByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if result.DeletedCount == 0 {
		s.Logger.Debug("RemoveDoctor: no doctor with email", zap.String("email", email))
	}
	return result, nil
}

package tailor

import (
	"fmt"
	"time"

	"github.com/tu-usuario/sastre-api/internal/application/dto"
	"github.com/tu-usuario/sastre-api/internal/application/ports"
	"github.com/tu-usuario/sastre-api/internal/domain"
	"github.com/tu-usuario/sastre-api/internal/domain/entity"
	"github.com/tu-usuario/sastre-api/internal/domain/repository"
	"github.com/tu-usuario/sastre-api/pkg/logger"
	"github.com/tu-usuario/sastre-api/pkg/password"
)

// defaultReason texto registrado cuando el admin no da motivo.
const defaultReason = "No reason provided"

// VerificationUseCase máquina de estados sobre TailorInfo.Status:
//
//	pending → approved | rejected
//	approved → deactivated
//	deactivated → approved
//
// Toda otra transición es ilegal. El campo externo User.Status se mantiene en
// sincronía en cada transición.
type VerificationUseCase struct {
	userRepo repository.UserRepository
	notifier ports.Notifier
	log      *logger.Logger
}

// NewVerificationUseCase construye el caso de uso de verificación.
func NewVerificationUseCase(userRepo repository.UserRepository, notifier ports.Notifier, log *logger.Logger) *VerificationUseCase {
	return &VerificationUseCase{userRepo: userRepo, notifier: notifier, log: log}
}

// Verify aplica una acción del flujo de verificación sobre el sastre.
// Precondiciones para cualquier acción: rol de sastre real y email usable
// (errores 400, no 500). El email de notificación es fire-and-forget: su
// fallo nunca revierte la transición.
func (uc *VerificationUseCase) Verify(userID string, in dto.VerifyTailorRequest) (*dto.VerifyTailorResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if !user.IsTailor() || user.TailorInfo == nil {
		return nil, domain.ErrNotATailor
	}
	if user.EmailAddress() == "" {
		return nil, domain.ErrNoEmail
	}

	current := user.TailorInfo.Status
	reason := in.Reason
	if reason == "" {
		reason = defaultReason
	}

	var tempPassword string
	var subject, body string

	switch in.Action {
	case dto.VerifyActionApprove:
		if current != entity.TailorStatusPending {
			return nil, transitionErr(in.Action, current)
		}
		user.TailorInfo.Status = entity.TailorStatusApproved
		user.Status = entity.UserStatusApproved
		// Credencial sintetizada: cuentas sin contraseña (altas de admin) o a
		// petición explícita. Solo se persiste el hash; el claro viaja una vez
		// en la respuesta y en el email.
		if user.Password == "" || in.GenerateTempPassword {
			tempPassword, err = password.GenerateTemp()
			if err != nil {
				return nil, err
			}
			hash, err := password.Hash(tempPassword)
			if err != nil {
				return nil, err
			}
			user.Password = hash
		}
		subject = "Tu cuenta de sastre fue aprobada"
		body = "Hola " + user.OwnerName + ", tu cuenta fue aprobada y ya puedes recibir pedidos."
		if tempPassword != "" {
			body += " Tu contraseña temporal es: " + tempPassword + " (cámbiala al entrar)."
		}

	case dto.VerifyActionReject:
		if current != entity.TailorStatusPending {
			return nil, transitionErr(in.Action, current)
		}
		user.TailorInfo.Status = entity.TailorStatusRejected
		user.TailorInfo.RejectionReason = reason
		user.Status = entity.UserStatusRejected
		subject = "Tu registro de sastre fue rechazado"
		body = "Hola " + user.OwnerName + ", tu registro fue rechazado. Motivo: " + reason

	case dto.VerifyActionDeactivate:
		if current != entity.TailorStatusApproved {
			return nil, transitionErr(in.Action, current)
		}
		user.TailorInfo.Status = entity.TailorStatusDeactivated
		user.Status = entity.UserStatusDeactivated
		subject = "Tu cuenta de sastre fue desactivada"
		body = "Hola " + user.OwnerName + ", tu cuenta fue desactivada y no recibirás pedidos nuevos."

	case dto.VerifyActionActivate:
		if current != entity.TailorStatusDeactivated {
			return nil, transitionErr(in.Action, current)
		}
		user.TailorInfo.Status = entity.TailorStatusApproved
		user.Status = entity.UserStatusApproved
		subject = "Tu cuenta de sastre fue reactivada"
		body = "Hola " + user.OwnerName + ", tu cuenta fue reactivada. Motivo: " + reason

	default:
		return nil, fmt.Errorf("%w: acción desconocida %q", domain.ErrInvalidInput, in.Action)
	}

	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}

	uc.notifier.EnqueueEmail(user.Email, subject, body)

	return &dto.VerifyTailorResponse{
		User:         dto.ToUserResponse(user),
		TempPassword: tempPassword,
	}, nil
}

func transitionErr(action, current string) error {
	return fmt.Errorf("%w: no se puede %s desde el estado %q", domain.ErrInvalidTransition, action, current)
}

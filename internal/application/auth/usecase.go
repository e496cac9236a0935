package auth

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/sastre-api/internal/application/dto"
	"github.com/tu-usuario/sastre-api/internal/application/ports"
	"github.com/tu-usuario/sastre-api/internal/domain"
	"github.com/tu-usuario/sastre-api/internal/domain/entity"
	"github.com/tu-usuario/sastre-api/internal/domain/repository"
	"github.com/tu-usuario/sastre-api/pkg/jwt"
	"github.com/tu-usuario/sastre-api/pkg/logger"
	"github.com/tu-usuario/sastre-api/pkg/password"
)

// JWTConfig configuración para emisión de tokens.
type JWTConfig struct {
	Secret           string
	AccessExpMinutes int
	RefreshExpHours  int
	Issuer           string
}

// AuthUseCase gestor de sesiones sobre las dos colecciones de principals.
// La colección se elige por role_id solicitado: 3 busca en customers, todo lo
// demás en users.
type AuthUseCase struct {
	userRepo     repository.UserRepository
	customerRepo repository.CustomerRepository
	roleRepo     repository.RoleRepository
	notifier     ports.Notifier
	jwtCfg       JWTConfig
	log          *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	userRepo repository.UserRepository,
	customerRepo repository.CustomerRepository,
	roleRepo repository.RoleRepository,
	notifier ports.Notifier,
	jwtCfg JWTConfig,
	log *logger.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:     userRepo,
		customerRepo: customerRepo,
		roleRepo:     roleRepo,
		notifier:     notifier,
		jwtCfg:       jwtCfg,
		log:          log,
	}
}

// findPrincipal resuelve el principal por identificador en la colección que
// corresponde al rol solicitado. '@' en el identificador decide email vs
// teléfono (contactNumber en customers, phone_number en users).
func (uc *AuthUseCase) findPrincipal(identifier string, requestedRoleID int) (entity.Principal, error) {
	byEmail := strings.Contains(identifier, "@")
	if requestedRoleID == entity.RoleIDCustomer {
		var c *entity.Customer
		var err error
		if byEmail {
			c, err = uc.customerRepo.GetByEmail(identifier)
		} else {
			c, err = uc.customerRepo.GetByContactNumber(identifier)
		}
		if err != nil {
			return nil, err
		}
		if c == nil {
			// nil tipado: devolver la interfaz nula, no (*Customer)(nil)
			return nil, nil
		}
		return c, nil
	}
	var u *entity.User
	var err error
	if byEmail {
		u, err = uc.userRepo.GetByEmail(identifier)
	} else {
		u, err = uc.userRepo.GetByPhone(identifier)
	}
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}
	return u, nil
}

// Login valida credenciales contra la colección del rol solicitado, aplica la
// regla de escalación de admin y emite el par de tokens, persistiendo el
// refresh en el principal (sesión única, revocable por sobreescritura).
func (uc *AuthUseCase) Login(in dto.LoginRequest, requestedRoleID int) (*dto.LoginResponse, error) {
	if in.EmailOrPhone == "" {
		return nil, domain.ErrInvalidInput
	}

	principal, err := uc.findPrincipal(in.EmailOrPhone, requestedRoleID)
	if err != nil {
		return nil, err
	}

	if in.Provider == "" {
		// Camino con contraseña: la ausencia del principal es error explícito.
		if principal == nil {
			if strings.Contains(in.EmailOrPhone, "@") {
				return nil, domain.ErrEmailNotFound
			}
			return nil, domain.ErrPhoneNotFound
		}
		if !password.Compare(principal.PasswordHash(), in.Password) {
			return nil, domain.ErrInvalidCredentials
		}
	}
	// Camino federado: el token del proveedor ya fue verificado por el
	// middleware correspondiente; la ausencia se tolera hasta el check de rol.

	if principal == nil {
		return nil, domain.ErrUserNotFound
	}
	if !IsAdminOverride(principal) && principal.RoleID() != requestedRoleID {
		return nil, domain.ErrUserNotFound
	}

	access, refresh, err := uc.issueTokens(principal)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		User:         dto.ToPrincipalResponse(principal),
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}

// Refresh rota el par de tokens. El role_id del claim re-resuelve la
// colección (0/ausente = tokens legacy, colección users); el token presentado
// debe coincidir EXACTAMENTE con el almacenado, lo que detecta replay de un
// refresh ya rotado.
func (uc *AuthUseCase) Refresh(oldRefreshToken string) (*dto.TokenPair, error) {
	if oldRefreshToken == "" {
		return nil, domain.ErrUnauthorized
	}
	principalID, roleID, err := jwt.ParseRefresh(uc.jwtCfg.Secret, oldRefreshToken)
	if err != nil {
		return nil, domain.ErrTokenReused
	}

	principal, err := uc.principalByID(principalID, roleID)
	if err != nil {
		return nil, err
	}
	if principal == nil {
		return nil, domain.ErrTokenReused
	}
	if principal.StoredRefreshToken() != oldRefreshToken {
		return nil, domain.ErrTokenReused
	}

	access, refresh, err := uc.issueTokens(principal)
	if err != nil {
		return nil, err
	}
	return &dto.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Logout limpia el refresh token almacenado. Idempotente.
func (uc *AuthUseCase) Logout(principal entity.Principal) error {
	if principal == nil {
		return nil
	}
	switch principal.(type) {
	case *entity.Customer:
		return uc.customerRepo.UpdateRefreshToken(principal.PrincipalID(), "")
	default:
		return uc.userRepo.UpdateRefreshToken(principal.PrincipalID(), "")
	}
}

// ChangePassword verifica la contraseña vigente y persiste la nueva.
func (uc *AuthUseCase) ChangePassword(principal entity.Principal, in dto.ChangePasswordRequest) error {
	if in.OldPassword == "" || in.NewPassword == "" {
		return domain.ErrInvalidInput
	}
	if !password.Compare(principal.PasswordHash(), in.OldPassword) {
		return domain.ErrInvalidCredentials
	}
	hash, err := password.Hash(in.NewPassword)
	if err != nil {
		return err
	}
	switch p := principal.(type) {
	case *entity.Customer:
		p.Password = hash
		p.UpdatedAt = time.Now()
		return uc.customerRepo.Update(p)
	case *entity.User:
		p.Password = hash
		p.UpdatedAt = time.Now()
		return uc.userRepo.Update(p)
	}
	return domain.ErrInvalidInput
}

// Register da de alta un principal. RoleID 3 crea un Customer; el resto crea
// un User (con TailorInfo cuando el rol es sastre). Si el caller autenticado
// es admin, el sastre nace aprobado y se salta el flujo pending.
func (uc *AuthUseCase) Register(in dto.RegisterRequest, caller entity.Principal) (interface{}, error) {
	if in.Email == "" || in.RoleID == 0 {
		return nil, domain.ErrInvalidInput
	}
	role, err := uc.roleRepo.GetByRoleID(in.RoleID)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.ErrInvalidRole
	}

	var hash string
	if in.Password != "" {
		if hash, err = password.Hash(in.Password); err != nil {
			return nil, err
		}
	}
	now := time.Now()

	if in.RoleID == entity.RoleIDCustomer {
		existing, err := uc.customerRepo.GetByEmail(in.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrEmailAlreadyExists
		}
		customer := &entity.Customer{
			ID:            uuid.New().String(),
			Email:         in.Email,
			Password:      hash,
			RoleIDNum:     in.RoleID,
			Role:          role,
			Name:          in.Name,
			ContactNumber: in.ContactNumber,
			Status:        entity.CustomerStatusApproved,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := uc.customerRepo.Create(customer); err != nil {
			return nil, err
		}
		return dto.ToCustomerResponse(customer), nil
	}

	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		Password:     hash,
		RoleIDNum:    in.RoleID,
		Role:         role,
		OwnerName:    in.OwnerName,
		BusinessName: in.BusinessName,
		PhoneNumber:  in.PhoneNumber,
		Country:      in.Country,
		City:         in.City,
		Status:       entity.UserStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if in.RoleID == entity.RoleIDTailor {
		info := &entity.TailorInfo{SubmittedAt: now, Status: entity.TailorStatusPending}
		info.BusinessInfo.BusinessName = in.BusinessName
		info.BusinessInfo.OwnerName = in.OwnerName
		info.BusinessInfo.Whatsapp = in.Whatsapp
		info.BusinessInfo.Locations = in.Locations
		info.ProfessionalInfo.Gender = in.Gender
		info.ProfessionalInfo.Experience = in.Experience
		info.ProfessionalInfo.Description = in.Description
		for _, id := range in.Specialties {
			info.ProfessionalInfo.Specialties = append(info.ProfessionalInfo.Specialties, entity.SpecialtyRef{ID: id})
		}
		info.Services.HomeMeasurement = in.HomeMeasurement
		info.Services.RushOrders = in.RushOrders
		user.TailorInfo = info
	}

	// Alta hecha por un admin: el sastre nace aprobado, sin pasar por pending.
	if IsAdminOverride(caller) {
		user.Status = entity.UserStatusApproved
		if user.TailorInfo != nil {
			user.TailorInfo.Status = entity.TailorStatusApproved
		}
	}

	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}

	if in.RoleID == entity.RoleIDTailor {
		uc.notifier.EnqueueEmail(user.Email,
			"Bienvenido a la plataforma: próximos pasos",
			"Hola "+user.OwnerName+", recibimos el registro de "+user.BusinessName+". Te avisaremos cuando la verificación termine.")
	}

	return dto.ToUserResponse(user), nil
}

// ResolveByID busca el principal primero en users y luego en customers (los
// espacios de id son disjuntos). Devuelve además la colección de origen.
// Lo usa el middleware de acceso.
func (uc *AuthUseCase) ResolveByID(id string) (entity.Principal, string, error) {
	u, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, "", err
	}
	if u != nil {
		return u, "user", nil
	}
	c, err := uc.customerRepo.GetByID(id)
	if err != nil {
		return nil, "", err
	}
	if c != nil {
		return c, "customer", nil
	}
	return nil, "", nil
}

func (uc *AuthUseCase) principalByID(id string, roleID int) (entity.Principal, error) {
	if roleID == entity.RoleIDCustomer {
		c, err := uc.customerRepo.GetByID(id)
		if err != nil || c == nil {
			return nil, err
		}
		return c, nil
	}
	u, err := uc.userRepo.GetByID(id)
	if err != nil || u == nil {
		return nil, err
	}
	return u, nil
}

// issueTokens emite access+refresh y persiste el refresh sobre el registro
// del principal, invalidando cualquier sesión anterior.
func (uc *AuthUseCase) issueTokens(principal entity.Principal) (access, refresh string, err error) {
	access, err = jwt.GenerateAccess(uc.jwtCfg.Secret, principal.PrincipalID(), principal.RoleName(),
		uc.jwtCfg.Issuer, uc.jwtCfg.AccessExpMinutes)
	if err != nil {
		return "", "", err
	}
	refresh, err = jwt.GenerateRefresh(uc.jwtCfg.Secret, principal.PrincipalID(), principal.RoleID(),
		uc.jwtCfg.Issuer, uc.jwtCfg.RefreshExpHours)
	if err != nil {
		return "", "", err
	}

	switch principal.(type) {
	case *entity.Customer:
		err = uc.customerRepo.UpdateRefreshToken(principal.PrincipalID(), refresh)
	default:
		err = uc.userRepo.UpdateRefreshToken(principal.PrincipalID(), refresh)
	}
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

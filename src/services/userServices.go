package services

import (
	"errors"
	"strings"
	"time"

	"github.com/MUSEO/MUSEO-Backend/src/dtos"
	"github.com/MUSEO/MUSEO-Backend/src/middleware"
	"github.com/MUSEO/MUSEO-Backend/src/models"
	"github.com/MUSEO/MUSEO-Backend/src/validation"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultRoleName es el rol que se asigna al registrarse sin rol explícito.
const DefaultRoleName = "Usuario"

var userSchema = validation.Schema{
	"firstname": {
		{Kind: validation.Required},
		{Kind: validation.Str},
		{Kind: validation.Max, Max: 50},
	},
	"lastname": {
		{Kind: validation.Required},
		{Kind: validation.Str},
		{Kind: validation.Max, Max: 50},
	},
	"document": {
		{Kind: validation.Required},
		{Kind: validation.Str},
		{Kind: validation.Max, Max: 20},
		{Kind: validation.Unique, Table: "user_models", Column: "document"},
	},
	"email": {
		{Kind: validation.Required},
		{Kind: validation.Email},
		{Kind: validation.Max, Max: 100},
		{Kind: validation.Unique, Table: "user_models", Column: "email"},
	},
	"phone": {
		{Kind: validation.Str},
		{Kind: validation.Max, Max: 20},
	},
	"birth_date": {
		{Kind: validation.Date},
	},
	"password": {
		{Kind: validation.Required},
		{Kind: validation.Str},
		{Kind: validation.Confirmed},
	},
	"role_id": {
		{Kind: validation.Exists, Table: "role_models"},
	},
}

// Al editar, la contraseña es opcional: omitirla conserva la credencial.
var userUpdateSchema = validation.Schema{
	"firstname": userSchema["firstname"],
	"lastname":  userSchema["lastname"],
	"document":  userSchema["document"],
	"email":     userSchema["email"],
	"phone":     userSchema["phone"],
	"birth_date": userSchema["birth_date"],
	"password": {
		{Kind: validation.Str},
		{Kind: validation.Confirmed},
	},
	"role_id": userSchema["role_id"],
}

type UserService struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewUserService creates a new instance of UserService
func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db, validator: validation.New(db)}
}

// GetAllUsers retrieves a paginated page of users, searchable by name,
// document, email and the related role name.
func (s *UserService) GetAllUsers(search string, page int) (*dtos.Page[models.UserModel], error) {
	page = normalizePage(page)
	query := s.db.Model(&models.UserModel{}).Preload("Role")
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.
			Joins("LEFT JOIN role_models ON role_models.id = user_models.role_id").
			Where(
				"LOWER(user_models.firstname) LIKE ? OR LOWER(user_models.lastname) LIKE ? OR LOWER(user_models.document) LIKE ? OR LOWER(user_models.email) LIKE ? OR LOWER(role_models.name) LIKE ?",
				like, like, like, like, like,
			)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	users := make([]models.UserModel, 0, PageSize)
	if err := query.Order("user_models.id DESC").Offset((page - 1) * PageSize).Limit(PageSize).Find(&users).Error; err != nil {
		return nil, err
	}
	for i := range users {
		users[i].Password = ""
	}

	return &dtos.Page[models.UserModel]{
		Data:       users,
		Total:      total,
		Page:       page,
		PerPage:    PageSize,
		TotalPages: totalPages(total),
		Search:     search,
	}, nil
}

func (s *UserService) GetUserByID(id int) (*models.UserModel, error) {
	var user models.UserModel
	if err := s.db.Preload("Role").First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	user.Password = ""
	return &user, nil
}

// RegisterUser validates and creates a new user. Without an explicit role it
// assigns the "Usuario" role, falling back to the first available role. A
// database with zero roles is a setup error (ErrNoRoles), never a user row
// pointing at a role that does not exist.
func (s *UserService) RegisterUser(request *models.RegisterRequest) (*models.UserModel, error) {
	user := request.UserModel

	if errs := s.validator.Check(userSchema, userValues(&user, request.PasswordConfirmation), nil); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	if user.RoleID == 0 {
		roleID, err := s.defaultRoleID()
		if err != nil {
			return nil, err
		}
		user.RoleID = roleID
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user.Password = string(hashedPassword)

	if err := s.db.Create(&user).Error; err != nil {
		return nil, translateWriteError(err, "email")
	}
	return &user, nil
}

// UpdateUser applies a partial update; the password is only re-hashed and
// replaced when the caller supplies a new value.
func (s *UserService) UpdateUser(id int, request *models.RegisterRequest) (*models.UserModel, error) {
	var user models.UserModel
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	updated := request.UserModel
	if errs := s.validator.Check(userUpdateSchema, userValues(&updated, request.PasswordConfirmation), &id); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	user.FirstName = updated.FirstName
	user.LastName = updated.LastName
	user.Document = updated.Document
	user.Email = updated.Email
	user.Phone = updated.Phone
	user.BirthDate = updated.BirthDate
	if updated.RoleID != 0 {
		user.RoleID = updated.RoleID
	}
	if strings.TrimSpace(updated.Password) != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(updated.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hashedPassword)
	}

	if err := s.db.Save(&user).Error; err != nil {
		return nil, translateWriteError(err, "email")
	}
	user.Password = ""
	return &user, nil
}

// DeleteUser deletes a User record by ID
func (s *UserService) DeleteUser(id int) error {
	result := s.db.Delete(&models.UserModel{}, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
			return ErrConflict
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// AuthenticateUser checks user credentials and returns a JWT token if valid
func (s *UserService) AuthenticateUser(email, password string) (string, error) {
	var user models.UserModel
	result := s.db.Where("email = ?", email).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", errors.New("credenciales inválidas")
		}
		return "", result.Error
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", errors.New("credenciales inválidas")
	}

	claims := jwt.MapClaims{
		"id":  user.Id,
		"exp": time.Now().Add(time.Hour * 12).Unix(), // Token expires in 12 hours
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(middleware.GetSecretKey()))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetUserFormData returns the reference data for the user form
func (s *UserService) GetUserFormData() (map[string]interface{}, error) {
	var roles []models.RoleModel
	if err := s.db.Order("name ASC").Find(&roles).Error; err != nil {
		return nil, err
	}
	return map[string]interface{}{"roles": roles}, nil
}

func (s *UserService) CheckField(field, value string, excludeID *int) (bool, string) {
	return s.validator.Field(userSchema, field, value, excludeID)
}

func (s *UserService) defaultRoleID() (int, error) {
	var role models.RoleModel
	err := s.db.Where("name = ?", DefaultRoleName).First(&role).Error
	if err == nil {
		return role.Id, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}
	err = s.db.Order("id ASC").First(&role).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, ErrNoRoles
	}
	if err != nil {
		return 0, err
	}
	return role.Id, nil
}

func userValues(u *models.UserModel, passwordConfirmation string) map[string]interface{} {
	return map[string]interface{}{
		"firstname":             u.FirstName,
		"lastname":              u.LastName,
		"document":              u.Document,
		"email":                 u.Email,
		"phone":                 u.Phone,
		"birth_date":            u.BirthDate,
		"password":              u.Password,
		"password_confirmation": passwordConfirmation,
		"role_id":               optionalID(u.RoleID),
	}
}

// optionalID deja pasar los FK opcionales sin valor (id cero) como ausentes.
func optionalID(id int) interface{} {
	if id == 0 {
		return nil
	}
	return id
}

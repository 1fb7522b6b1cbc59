package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/veloura/salon-scheduler/internal/audit"
	"github.com/veloura/salon-scheduler/internal/httperr"
	"github.com/veloura/salon-scheduler/internal/httpresp"
	"github.com/veloura/salon-scheduler/internal/models"
	usecase "github.com/veloura/salon-scheduler/internal/usecase/appointment"
	"github.com/veloura/salon-scheduler/internal/validators"
)

type AdminHandler struct {
	db      *gorm.DB
	assign  *usecase.AssignStaff
	cancel  *usecase.CancelAppointment
	listAll *usecase.ListAllAppointments
	audit   *audit.Dispatcher
}

func NewAdminHandler(
	db *gorm.DB,
	assign *usecase.AssignStaff,
	cancel *usecase.CancelAppointment,
	listAll *usecase.ListAllAppointments,
	auditor *audit.Dispatcher,
) *AdminHandler {
	return &AdminHandler{
		db:      db,
		assign:  assign,
		cancel:  cancel,
		listAll: listAll,
		audit:   auditor,
	}
}

// ======================================================
// APPOINTMENTS
// ======================================================

type AssignStaffRequest struct {
	StaffID uint   `json:"staff_id" binding:"required"`
	Date    string `json:"date" binding:"required"`
	Time    string `json:"time" binding:"required"`
}

func (h *AdminHandler) AssignStaff(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	var req AssignStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, err := h.assign.Execute(c.Request.Context(), usecase.AssignStaffInput{
		AdminID:       currentUserID(c),
		AppointmentID: id,
		StaffID:       req.StaffID,
		Date:          req.Date,
		Time:          req.Time,
	})
	if err != nil {
		if httperr.WriteBusiness(c, err) {
			return
		}
		httperr.Internal(c, "internal_error", "Could not assign the staff member.")
		return
	}

	httpresp.OK(c, appointmentPayload(ap))
}

func (h *AdminHandler) DeleteAppointment(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	err := h.cancel.ExecuteAdmin(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		if httperr.WriteBusiness(c, err) {
			return
		}
		httperr.Internal(c, "internal_error", "Could not delete the booking.")
		return
	}

	httpresp.OK(c, gin.H{"message": "appointment_deleted"})
}

func (h *AdminHandler) ListAppointments(c *gin.Context) {
	page := httpresp.PageFromQuery(c)

	appointments, total, err := h.listAll.Execute(c.Request.Context(), page)
	if err != nil {
		httperr.Internal(c, "internal_error", "Could not list bookings.")
		return
	}

	httpresp.Page(c, appointmentListPayload(appointments), total, page)
}

// ======================================================
// USERS
// ======================================================

type CreateUserRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
	Role     string `json:"role" binding:"required"`
}

// CreateUser provisions staff and admin accounts. Clients register
// themselves through the public endpoint.
func (h *AdminHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Role != models.RoleStaff && req.Role != models.RoleAdmin {
		httperr.BadRequest(c, "invalid_role", "Role must be staff or admin.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "The email domain does not look valid.")
		return
	}

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "email_already_exists", "A user with this email already exists.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Could not create the user.")
		return
	}

	user := models.User{
		FullName:     req.FullName,
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        req.Phone,
		Role:         req.Role,
		Active:       true,
	}

	if err := h.db.Create(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_create_user", "Could not create the user.")
		return
	}

	adminID := currentUserID(c)
	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Role:     models.RoleAdmin,
		Action:   "user_created",
		Entity:   "user",
		EntityID: &user.ID,
		Metadata: map[string]any{"role": user.Role},
	})

	c.JSON(http.StatusCreated, userPayload(&user))
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	query := h.db.Model(&models.User{}).Order("created_at DESC")

	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}

	page := httpresp.PageFromQuery(c)

	var total int64
	query.Count(&total)

	var users []models.User
	if err := query.
		Limit(httpresp.PageSize).
		Offset((page - 1) * httpresp.PageSize).
		Find(&users).Error; err != nil {

		httperr.Internal(c, "internal_error", "Could not list users.")
		return
	}

	out := make([]gin.H, 0, len(users))
	for i := range users {
		payload := userPayload(&users[i])
		payload["active"] = users[i].Active
		out = append(out, payload)
	}

	httpresp.Page(c, out, total, page)
}

// DeactivateUser disables the account without deleting it; history and
// past bookings stay intact.
func (h *AdminHandler) DeactivateUser(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid user id.")
		return
	}

	if id == currentUserID(c) {
		httperr.BadRequest(c, "cannot_deactivate_self", "You cannot deactivate your own account.")
		return
	}

	result := h.db.Model(&models.User{}).
		Where("id = ? AND active = true", id).
		Update("active", false)
	if result.Error != nil {
		httperr.Internal(c, "internal_error", "Could not deactivate the user.")
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "user_not_found", "User not found or already inactive.")
		return
	}

	adminID := currentUserID(c)
	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Role:     models.RoleAdmin,
		Action:   "user_deactivated",
		Entity:   "user",
		EntityID: &id,
	})

	httpresp.OK(c, gin.H{"message": "user_deactivated"})
}

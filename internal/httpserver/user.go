package httpserver

import (
	"errors"
	"net/http"

	"storefront-api/internal/domain"
	usersvc "storefront-api/internal/service/user"

	"github.com/gin-gonic/gin"
)

func (h *handlers) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.f.failFields(c, "invalid request body", map[string]string{"body": "body must be valid JSON"})
		return
	}
	if fields := req.validate(); len(fields) > 0 {
		h.f.failFields(c, "invalid registration", fields)
		return
	}

	u, err := h.deps.Users.Register(c.Request.Context(), usersvc.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, usersvc.ErrEmailTaken) {
			h.f.failFields(c, "invalid registration", map[string]string{"email": "email already registered"})
			return
		}
		h.f.fail(c, http.StatusInternalServerError, "could not create user", err)
		return
	}

	respond(c, http.StatusCreated, gin.H{
		"user": gin.H{"id": u.ID, "name": u.Name, "email": u.Email},
	})
}

func (h *handlers) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.f.failFields(c, "invalid request body", map[string]string{"body": "body must be valid JSON"})
		return
	}
	if fields := req.validate(); len(fields) > 0 {
		h.f.failFields(c, "invalid login", fields)
		return
	}

	_, token, err := h.deps.Users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usersvc.ErrInvalidCredentials) {
			h.f.unauthorized(c, "invalid email or password")
			return
		}
		h.f.fail(c, http.StatusInternalServerError, "could not log in", err)
		return
	}

	respondOK(c, gin.H{"token": token})
}

func addressPayload(a domain.Address) gin.H {
	return gin.H{
		"id":         a.ID,
		"zipcode":    a.Zipcode,
		"street":     a.Street,
		"number":     a.Number,
		"city":       a.City,
		"state":      a.State,
		"country":    a.Country,
		"complement": a.Complement,
	}
}

func (h *handlers) addAddress(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		h.f.unauthorized(c, "authentication required")
		return
	}

	var req addressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.f.failFields(c, "invalid request body", map[string]string{"body": "body must be valid JSON"})
		return
	}
	if fields := req.validate(); len(fields) > 0 {
		h.f.failFields(c, "invalid address", fields)
		return
	}

	a, err := h.deps.Users.AddAddress(c.Request.Context(), user.ID, usersvc.AddressInput{
		Zipcode:    req.Zipcode,
		Street:     req.Street,
		Number:     req.Number,
		City:       req.City,
		State:      req.State,
		Country:    req.Country,
		Complement: req.Complement,
	})
	if err != nil {
		h.f.fail(c, http.StatusInternalServerError, "could not create address", err)
		return
	}

	respondOK(c, gin.H{"address": addressPayload(*a)})
}

func (h *handlers) listAddresses(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		h.f.unauthorized(c, "authentication required")
		return
	}

	addresses, err := h.deps.Users.ListAddresses(c.Request.Context(), user.ID)
	if err != nil {
		h.f.fail(c, http.StatusInternalServerError, "could not list addresses", err)
		return
	}

	out := make([]gin.H, 0, len(addresses))
	for _, a := range addresses {
		out = append(out, addressPayload(a))
	}
	respondOK(c, gin.H{"addresses": out})
}

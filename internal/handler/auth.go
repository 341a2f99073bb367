package handler

import (
    "net/http" // HTTP status codes and primitives
    "time"

    "github.com/labstack/echo/v4" // Echo framework for HTTP routing

    "github.com/ryochana/toh-jeen-npc-68v5/internal/config" // app configuration
    "github.com/ryochana/toh-jeen-npc-68v5/internal/utils"  // token issuing and password checks
)

// AuthHandler implements the admin gate: one shared password, one
// role.  A successful login returns a session token the client sends
// on admin requests; logout is simply discarding the token, so the
// server keeps no session state at all.
type AuthHandler struct {
    Cfg config.Config
}

func NewAuthHandler(cfg config.Config) *AuthHandler {
    return &AuthHandler{Cfg: cfg}
}

// ----- DTOs -----

type loginReq struct {
    Password string `json:"password"`
}

type loginResp struct {
    Token   string    `json:"token"`
    Role    string    `json:"role"`
    Expires time.Time `json:"expires"`
}

// Login verifies the shared admin password and issues a session token.
func (h *AuthHandler) Login(c echo.Context) error {
    var req loginReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if req.Password == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "password required"})
    }
    if !utils.CheckAdminPassword(h.Cfg.AdminPassword, h.Cfg.AdminPasswordHash, req.Password) {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid password"})
    }

    session, err := utils.NewSessionToken(h.Cfg.JWTSecret, h.Cfg.SessionTTLMin)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
    }
    return c.JSON(http.StatusOK, loginResp{
        Token:   session.Token,
        Role:    utils.RoleAdmin,
        Expires: session.Exp,
    })
}

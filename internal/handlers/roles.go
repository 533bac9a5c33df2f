package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hireloop-ai/hireloop/internal/generator"
	"github.com/hireloop-ai/hireloop/internal/models"
	"github.com/hireloop-ai/hireloop/internal/store"
	"github.com/pkg/errors"
)

// Index shows every submitted role with its candidate count, newest first.
func Index(c *gin.Context, s *store.Store) {
	roles, err := s.ListRolesWithCounts()
	if err != nil {
		log.WithError(err).Error("listing roles")
		c.String(http.StatusInternalServerError, "could not load roles")
		return
	}
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Roles":   roles,
		"Flashes": takeFlashes(c),
	})
}

// NewRoleForm renders the empty role creation form.
func NewRoleForm(c *gin.Context) {
	c.HTML(http.StatusOK, "new_role.html", gin.H{
		"Flashes": takeFlashes(c),
	})
}

// CreateRole validates the form, persists the role together with a fresh
// batch of generated candidates, and redirects to the detail view. A missing
// field sends the client back to the form with nothing persisted.
func CreateRole(c *gin.Context, s *store.Store, gen *generator.Generator) {
	title := c.PostForm("title")
	description := c.PostForm("description")
	if title == "" || description == "" {
		setFlash(c, "danger", "Please provide both a title and a job description.")
		c.Redirect(http.StatusFound, "/role/new")
		return
	}

	role := models.Role{
		Title:       title,
		Description: description,
		DateCreated: time.Now().UTC(),
	}
	candidates := gen.Generate(title, generator.DefaultCount)

	if err := s.CreateRoleWithCandidates(&role, candidates); err != nil {
		log.WithError(err).Error("creating role")
		setFlash(c, "danger", "Could not save the role. Please try again.")
		c.Redirect(http.StatusFound, "/role/new")
		return
	}

	log.WithField("role_id", role.ID).Info("role created with generated candidates")
	setFlash(c, "success", "Role created and candidates generated successfully!")
	c.Redirect(http.StatusFound, fmt.Sprintf("/role/%d", role.ID))
}

// ViewRole renders one role and its candidates ranked by fit score. Unknown
// ids bounce back to the listing with a not-found message.
func ViewRole(c *gin.Context, s *store.Store) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		setFlash(c, "danger", "Role not found.")
		c.Redirect(http.StatusFound, "/")
		return
	}

	role, err := s.GetRole(uint(id))
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.WithError(err).Error("loading role")
		}
		setFlash(c, "danger", "Role not found.")
		c.Redirect(http.StatusFound, "/")
		return
	}

	candidates, err := s.ListCandidatesForRole(role.ID)
	if err != nil {
		log.WithError(err).Error("loading candidates")
		c.String(http.StatusInternalServerError, "could not load candidates")
		return
	}

	c.HTML(http.StatusOK, "role.html", gin.H{
		"Role":       role,
		"Candidates": candidates,
		"Flashes":    takeFlashes(c),
	})
}

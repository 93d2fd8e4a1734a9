package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/mnemos/internal/common"
	"github.com/dmitrijs2005/mnemos/internal/models"
)

type categoryBody struct {
	Name string `json:"name"`
}

type renameBody struct {
	NewName string `json:"new_name"`
}

func (s *Server) healthCheck(c *gin.Context) {
	if !s.gate.Ready() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "starting"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// bind decodes the JSON body, answering 400 on malformed input.
func bind(c *gin.Context, v any) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		respondError(c, http.StatusBadRequest, "bad_request", err)
		return false
	}
	return true
}

func (s *Server) listItems(c *gin.Context) {
	items, err := s.services.Items.List(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (s *Server) createItem(c *gin.Context) {
	var in models.Item
	if !bind(c, &in) {
		return
	}
	item, err := s.services.Items.Create(c.Request.Context(), in)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (s *Server) updateItem(c *gin.Context) {
	var in models.Item
	if !bind(c, &in) {
		return
	}
	item, err := s.services.Items.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (s *Server) deleteItem(c *gin.Context) {
	if err := s.services.Items.Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) getSettings(c *gin.Context) {
	settings, err := s.services.Settings.Get(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (s *Server) updateSettings(c *gin.Context) {
	var in models.Settings
	if !bind(c, &in) {
		return
	}
	settings, err := s.services.Settings.Update(c.Request.Context(), in)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (s *Server) listCategories(c *gin.Context) {
	cats, err := s.services.Categories.List(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, cats)
}

func (s *Server) addCategory(c *gin.Context) {
	var in categoryBody
	if !bind(c, &in) {
		return
	}
	cats, err := s.services.Categories.Add(c.Request.Context(), in.Name)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, cats)
}

func (s *Server) renameCategory(c *gin.Context) {
	var in renameBody
	if !bind(c, &in) {
		return
	}
	cats, err := s.services.Categories.Rename(c.Request.Context(), c.Param("name"), in.NewName)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, cats)
}

func (s *Server) deleteCategory(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		s.fail(c, common.ErrValidation)
		return
	}
	cats, err := s.services.Categories.Delete(c.Request.Context(), name)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, cats)
}

func (s *Server) getData(c *gin.Context) {
	data, err := s.services.Data.Export(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, data)
}

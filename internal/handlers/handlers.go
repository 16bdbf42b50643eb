package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/studydesk/studydesk/internal/collection"
	"github.com/studydesk/studydesk/internal/draft"
	"github.com/studydesk/studydesk/internal/model"
)

// RegisterOrganizerRoutes exposes the two collections over HTTP. Each write
// request runs through a draft session, the same commit path the add/edit
// forms use, so validation semantics are identical: an empty name/title
// commits nothing and the store is not touched.
func RegisterOrganizerRoutes(r *gin.Engine, courses *collection.Manager[model.Course], assignments *collection.AssignmentManager) {
	r.GET("/api/courses", func(c *gin.Context) {
		c.JSON(http.StatusOK, courses.Records())
	})

	r.POST("/api/courses", func(c *gin.Context) {
		var req model.Course
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		sess := draft.NewSession[model.Course](courses)
		sess.OpenForCreate()
		sess.Update(func(d *model.Course) {
			d.Name = req.Name
			d.Time = req.Time
			d.Days = req.Days
			d.Location = req.Location
		})
		rec, committed, err := sess.Commit(c.Request.Context())
		if !committed {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "name must not be empty"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, rec)
	})

	r.PUT("/api/courses/:id", func(c *gin.Context) {
		id := c.Param("id")
		var req model.Course
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		sess := draft.NewSession[model.Course](courses)
		if existing, ok := courses.Get(id); ok {
			sess.OpenForEdit(existing)
		} else {
			// record vanished under the open form; commit re-adds it
			sess.OpenForCreate()
		}
		sess.Update(func(d *model.Course) {
			d.ID = id
			d.Name = req.Name
			d.Time = req.Time
			d.Days = req.Days
			d.Location = req.Location
		})
		rec, committed, err := sess.Commit(c.Request.Context())
		if !committed {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "name must not be empty"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, rec)
	})

	r.DELETE("/api/courses/:id", func(c *gin.Context) {
		if err := courses.Remove(c.Request.Context(), c.Param("id")); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Status(http.StatusNoContent)
	})

	r.GET("/api/assignments", func(c *gin.Context) {
		c.JSON(http.StatusOK, assignments.Records())
	})

	r.POST("/api/assignments", func(c *gin.Context) {
		var req model.Assignment
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		sess := draft.NewSession[model.Assignment](assignments)
		sess.OpenForCreate()
		sess.Update(func(d *model.Assignment) {
			d.Title = req.Title
			d.Course = req.Course
			d.DueDate = req.DueDate
			d.Description = req.Description
		})
		rec, committed, err := sess.Commit(c.Request.Context())
		if !committed {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "title must not be empty"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, rec)
	})

	r.PUT("/api/assignments/:id", func(c *gin.Context) {
		id := c.Param("id")
		var req model.Assignment
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		sess := draft.NewSession[model.Assignment](assignments)
		if existing, ok := assignments.Get(id); ok {
			sess.OpenForEdit(existing)
		} else {
			sess.OpenForCreate()
		}
		sess.Update(func(d *model.Assignment) {
			d.ID = id
			d.Title = req.Title
			d.Course = req.Course
			d.DueDate = req.DueDate
			d.Description = req.Description
			d.Completed = req.Completed
		})
		rec, committed, err := sess.Commit(c.Request.Context())
		if !committed {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "title must not be empty"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, rec)
	})

	r.POST("/api/assignments/:id/toggle", func(c *gin.Context) {
		if err := assignments.ToggleCompleted(c.Request.Context(), c.Param("id")); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Status(http.StatusNoContent)
	})

	r.DELETE("/api/assignments/:id", func(c *gin.Context) {
		if err := assignments.Remove(c.Request.Context(), c.Param("id")); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Status(http.StatusNoContent)
	})
}

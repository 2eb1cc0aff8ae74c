package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	v1 "vinr.eu/launchpad/api/launchpad/v1"
	"vinr.eu/launchpad/internal/logger"
	"vinr.eu/launchpad/internal/mockdata"
	"vinr.eu/launchpad/internal/validation"
)

const (
	Version           = "1.0.0"
	appCreatedMessage = "Application created successfully"
)

type Server struct {
	version string
	now     func() time.Time
}

func NewServer() *Server {
	return &Server{
		version: Version,
		now:     time.Now,
	}
}

func (s *Server) GetRoot(c *gin.Context) {
	c.JSON(http.StatusOK, v1.RootResponse{Message: "Hello World from FastAPI!"})
}

func (s *Server) GetPing(c *gin.Context) {
	version := s.version
	c.JSON(http.StatusOK, v1.PingResponse{
		Status:    "ok",
		Timestamp: s.now().UTC(),
		Version:   &version,
	})
}

func (s *Server) ListGitProviders(c *gin.Context, projectID int) {
	logger.Debug(c, "listing git providers", "project_id", projectID)
	c.JSON(http.StatusOK, mockdata.GitProviders())
}

func (s *Server) ListGitRepositories(c *gin.Context, projectID int, gitRepoID int) {
	logger.Debug(c, "listing git repositories", "project_id", projectID, "git_repo_id", gitRepoID)
	c.JSON(http.StatusOK, mockdata.GitRepositories())
}

func (s *Server) ListBranches(c *gin.Context, projectID int, installationID int, kind, owner, name string) {
	logger.Debug(c, "listing branches",
		"project_id", projectID,
		"installation_id", installationID,
		"repo", kind+"/"+owner+"/"+name,
	)
	c.JSON(http.StatusOK, mockdata.Branches())
}

// CreateApp checks the body and echoes it back. Nothing is created.
func (s *Server) CreateApp(c *gin.Context, projectID int, clusterID int) {
	var req v1.CreateAppRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		details := validation.FromBindError(err)
		logger.Warn(c, "create app request rejected", "project_id", projectID, "cluster_id", clusterID, "problems", len(details))
		c.JSON(http.StatusUnprocessableEntity, v1.ErrorResponse{
			Code:    http.StatusUnprocessableEntity,
			Message: "request validation failed",
			Details: details,
		})
		return
	}

	logger.Info(c, "create app accepted",
		"project_id", projectID,
		"cluster_id", clusterID,
		"app_name", *req.Name,
		"services", len(req.Services),
	)
	c.JSON(http.StatusCreated, v1.CreateAppResponse{
		Message:            appCreatedMessage,
		AppName:            *req.Name,
		DeploymentTargetID: *req.DeploymentTargetID,
		ProjectID:          projectID,
		ClusterID:          clusterID,
	})
}

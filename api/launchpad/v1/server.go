package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface is implemented by anything that serves the launchpad API.
// Path parameters arrive already parsed.
type ServerInterface interface {
	// (GET /)
	GetRoot(c *gin.Context)
	// (GET /ping)
	GetPing(c *gin.Context)
	// (GET /api/projects/{project_id}/integrations/git)
	ListGitProviders(c *gin.Context, projectID int)
	// (GET /api/projects/{project_id}/gitrepos/{git_repo_id}/repos)
	ListGitRepositories(c *gin.Context, projectID int, gitRepoID int)
	// (GET /api/projects/{project_id}/gitrepos/{installation_id}/repos/{kind}/{owner}/{name}/branches)
	ListBranches(c *gin.Context, projectID int, installationID int, kind string, owner string, name string)
	// (POST /api/projects/{project_id}/clusters/{cluster_id}/apps)
	CreateApp(c *gin.Context, projectID int, clusterID int)
}

// ParamError is handed to the ErrorHandler when a path parameter does not
// bind to its declared type.
type ParamError struct {
	Param string
	Err   error
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("invalid format for parameter %s: %v", e.Param, e.Err)
}

func (e *ParamError) Unwrap() error {
	return e.Err
}

type MiddlewareFunc func(c *gin.Context)

type ServerInterfaceWrapper struct {
	Handler            ServerInterface
	HandlerMiddlewares []MiddlewareFunc
	ErrorHandler       func(*gin.Context, error, int)
}

// runMiddlewares reports whether the chain let the request through.
func (siw *ServerInterfaceWrapper) runMiddlewares(c *gin.Context) bool {
	for _, middleware := range siw.HandlerMiddlewares {
		middleware(c)
		if c.IsAborted() {
			return false
		}
	}
	return true
}

func (siw *ServerInterfaceWrapper) bindInt(c *gin.Context, wildcard, param string, dest *int) bool {
	err := runtime.BindStyledParameterWithOptions("simple", param, c.Param(wildcard), dest,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandler(c, &ParamError{Param: param, Err: err}, http.StatusUnprocessableEntity)
		return false
	}
	return true
}

func (siw *ServerInterfaceWrapper) bindString(c *gin.Context, param string, dest *string) bool {
	err := runtime.BindStyledParameterWithOptions("simple", param, c.Param(param), dest,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandler(c, &ParamError{Param: param, Err: err}, http.StatusUnprocessableEntity)
		return false
	}
	return true
}

func (siw *ServerInterfaceWrapper) GetRoot(c *gin.Context) {
	if !siw.runMiddlewares(c) {
		return
	}
	siw.Handler.GetRoot(c)
}

func (siw *ServerInterfaceWrapper) GetPing(c *gin.Context) {
	if !siw.runMiddlewares(c) {
		return
	}
	siw.Handler.GetPing(c)
}

func (siw *ServerInterfaceWrapper) ListGitProviders(c *gin.Context) {
	var projectID int
	if !siw.bindInt(c, "project_id", "project_id", &projectID) {
		return
	}
	if !siw.runMiddlewares(c) {
		return
	}
	siw.Handler.ListGitProviders(c, projectID)
}

func (siw *ServerInterfaceWrapper) ListGitRepositories(c *gin.Context) {
	var projectID, gitRepoID int
	if !siw.bindInt(c, "project_id", "project_id", &projectID) ||
		!siw.bindInt(c, "git_repo_id", "git_repo_id", &gitRepoID) {
		return
	}
	if !siw.runMiddlewares(c) {
		return
	}
	siw.Handler.ListGitRepositories(c, projectID, gitRepoID)
}

func (siw *ServerInterfaceWrapper) ListBranches(c *gin.Context) {
	var projectID, installationID int
	var kind, owner, name string
	// The installation id shares the git_repo_id wildcard with ListGitRepositories.
	if !siw.bindInt(c, "project_id", "project_id", &projectID) ||
		!siw.bindInt(c, "git_repo_id", "installation_id", &installationID) ||
		!siw.bindString(c, "kind", &kind) ||
		!siw.bindString(c, "owner", &owner) ||
		!siw.bindString(c, "name", &name) {
		return
	}
	if !siw.runMiddlewares(c) {
		return
	}
	siw.Handler.ListBranches(c, projectID, installationID, kind, owner, name)
}

func (siw *ServerInterfaceWrapper) CreateApp(c *gin.Context) {
	var projectID, clusterID int
	if !siw.bindInt(c, "project_id", "project_id", &projectID) ||
		!siw.bindInt(c, "cluster_id", "cluster_id", &clusterID) {
		return
	}
	if !siw.runMiddlewares(c) {
		return
	}
	siw.Handler.CreateApp(c, projectID, clusterID)
}

type GinServerOptions struct {
	BaseURL      string
	Middlewares  []MiddlewareFunc
	ErrorHandler func(*gin.Context, error, int)
}

func RegisterHandlers(router gin.IRouter, si ServerInterface) {
	RegisterHandlersWithOptions(router, si, GinServerOptions{})
}

func RegisterHandlersWithOptions(router gin.IRouter, si ServerInterface, options GinServerOptions) {
	errorHandler := options.ErrorHandler
	if errorHandler == nil {
		errorHandler = func(c *gin.Context, err error, statusCode int) {
			c.JSON(statusCode, gin.H{"msg": err.Error()})
		}
	}

	wrapper := ServerInterfaceWrapper{
		Handler:            si,
		HandlerMiddlewares: options.Middlewares,
		ErrorHandler:       errorHandler,
	}

	base := options.BaseURL
	router.GET(base+"/", wrapper.GetRoot)
	router.GET(base+"/ping", wrapper.GetPing)
	router.GET(base+"/api/projects/:project_id/integrations/git", wrapper.ListGitProviders)
	router.GET(base+"/api/projects/:project_id/gitrepos/:git_repo_id/repos", wrapper.ListGitRepositories)
	router.GET(base+"/api/projects/:project_id/gitrepos/:git_repo_id/repos/:kind/:owner/:name/branches", wrapper.ListBranches)
	router.POST(base+"/api/projects/:project_id/clusters/:cluster_id/apps", wrapper.CreateApp)
}

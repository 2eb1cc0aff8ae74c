package v1

import "time"

// GitProvider is a source-control integration installed on a project.
type GitProvider struct {
	ID             int    `json:"id"`
	AccountID      int    `json:"account_id"`
	InstallationID int    `json:"installation_id"`
	Name           string `json:"name"`
	Provider       string `json:"provider"`
}

// GitRepository keeps the capitalised keys the wizard UI reads.
type GitRepository struct {
	FullName string `json:"FullName"`
	Kind     string `json:"Kind"`
}

// CreateAppRequest and the types below it require every field to be present
// and non-null. Pointers tell a missing field apart from a zero value.
type CreateAppRequest struct {
	Image              *ImageConfig             `json:"image" binding:"required"`
	Build              *BuildConfig             `json:"build" binding:"required"`
	Services           []ServiceConfig          `json:"services" binding:"required,dive"`
	Variables          []VariableConfig         `json:"variables" binding:"required,dive"`
	EnvironmentGroups  []EnvironmentGroupConfig `json:"environment_groups" binding:"required,dive"`
	Name               *string                  `json:"name" binding:"required"`
	DeploymentTargetID *string                  `json:"deployment_target_id" binding:"required"`
	Secrets            []VariableConfig         `json:"secrets" binding:"required,dive"`
}

type ImageConfig struct {
	Repository *string `json:"repository" binding:"required"`
	Tag        *string `json:"tag" binding:"required"`
}

type BuildConfig struct {
	Context    *string `json:"context" binding:"required"`
	Method     *string `json:"method" binding:"required"`
	Dockerfile *string `json:"dockerfile" binding:"required"`
	Repository *string `json:"repository" binding:"required"`
}

type ServiceConfig struct {
	Name         *string            `json:"name" binding:"required"`
	Run          *string            `json:"run" binding:"required"`
	Type         *string            `json:"type" binding:"required"`
	Instances    *int               `json:"instances" binding:"required"`
	CPUCores     *int               `json:"cpuCores" binding:"required"`
	RAMMegabytes *int               `json:"ramMegabytes" binding:"required"`
	Sleep        *bool              `json:"sleep" binding:"required"`
	Port         *int               `json:"port" binding:"required"`
	Autoscaling  *AutoscalingConfig `json:"autoscaling" binding:"required"`
	Domains      []DomainConfig     `json:"domains" binding:"required,dive"`
	HealthCheck  *HealthCheckConfig `json:"health_check" binding:"required"`
	Private      *bool              `json:"private" binding:"required"`
}

type AutoscalingConfig struct {
	Type                   *string `json:"type" binding:"required"`
	Enabled                *bool   `json:"enabled" binding:"required"`
	MinInstances           *int    `json:"min_instances" binding:"required"`
	MaxInstances           *int    `json:"max_instances" binding:"required"`
	CPUThresholdPercent    *int    `json:"cpu_threshold_percent" binding:"required"`
	MemoryThresholdPercent *int    `json:"memory_threshold_percent" binding:"required"`
}

type DomainConfig struct {
	Name *string `json:"name" binding:"required"`
}

type HealthCheckConfig struct {
	Enabled             *bool   `json:"enabled" binding:"required"`
	HTTPPath            *string `json:"http_path" binding:"required"`
	Command             *string `json:"command" binding:"required"`
	TimeoutSeconds      *int    `json:"timeout_seconds" binding:"required"`
	InitialDelaySeconds *int    `json:"initial_delay_seconds" binding:"required"`
}

type VariableConfig struct {
	Key   *string `json:"key" binding:"required"`
	Value *string `json:"value" binding:"required"`
}

type EnvironmentGroupConfig struct {
	Name *string `json:"name" binding:"required"`
}

type CreateAppResponse struct {
	Message            string `json:"message"`
	AppName            string `json:"app_name"`
	DeploymentTargetID string `json:"deployment_target_id"`
	ProjectID          int    `json:"project_id"`
	ClusterID          int    `json:"cluster_id"`
}

// FieldError locates one problem in a request, e.g. "body.services[0].port"
// or "path.project_id".
type FieldError struct {
	Loc  string `json:"loc"`
	Msg  string `json:"msg"`
	Type string `json:"type"`
}

type ErrorResponse struct {
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Details []FieldError `json:"details,omitempty"`
}

type PingResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   *string   `json:"version,omitempty"`
}

type RootResponse struct {
	Message string `json:"message"`
}

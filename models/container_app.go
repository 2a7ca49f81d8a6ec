package models

// Workload kinds accepted by the platform.
const (
	KindDeployment  = "Deployment"
	KindStatefulSet = "StatefulSet"
)

// Request body for `POST project/{id}/containerapps`
type ContainerAppSpec struct {
	Name        string `json:"name" yaml:"name" validate:"required,max=63"`
	Kind        string `json:"kind" yaml:"kind" validate:"required,oneof=Deployment StatefulSet"`
	Description string `json:"description" yaml:"description"`
}

// Response body for `POST project/{id}/containerapps`
type ContainerApp struct {
	ID int `json:"id"`
}

// Response body for `GET containerapp/{id}/state`
type AppState struct {
	State string `json:"state"`
}

type ContainerPort struct {
	Name          string `json:"name,omitempty" yaml:"name,omitempty"`
	ContainerPort int    `json:"containerPort" yaml:"containerPort" validate:"min=1,max=65535"`
	Protocol      string `json:"protocol,omitempty" yaml:"protocol,omitempty"`
}

type Container struct {
	Command               string            `json:"command" yaml:"command"`
	CPULimit              float64           `json:"cpuLimit" yaml:"cpuLimit" validate:"gtefield=CPURequest"`
	CPURequest            float64           `json:"cpuRequest" yaml:"cpuRequest" validate:"gt=0"`
	EnvFromConfig         []string          `json:"envFromConfig" yaml:"envFromConfig"`
	Envs                  map[string]string `json:"envs" yaml:"envs"`
	Image                 string            `json:"image" yaml:"image" validate:"required"`
	ImagePullPolicyAlways bool              `json:"imagePullPolicyAlways" yaml:"imagePullPolicyAlways"`
	MemoryLimit           int64             `json:"memoryLimit" yaml:"memoryLimit" validate:"gtefield=MemoryRequest"`
	MemoryRequest         int64             `json:"memoryRequest" yaml:"memoryRequest" validate:"gt=0"`
	Ports                 []ContainerPort   `json:"ports" yaml:"ports" validate:"dive"`
	RegistryType          string            `json:"registryType" yaml:"registryType"`
}

type Volume struct {
	Name      string `json:"name" yaml:"name" validate:"required"`
	MountPath string `json:"mountPath" yaml:"mountPath" validate:"required"`
	Size      int64  `json:"size,omitempty" yaml:"size,omitempty"`
}

// Request body for `POST containerapp/{id}/instances`
type InstancesSpec struct {
	Container       Container      `json:"container" yaml:"container"`
	HealthCheck     map[string]any `json:"healthCheck" yaml:"healthCheck"`
	MinReadySeconds int            `json:"minReadySeconds" yaml:"minReadySeconds" validate:"min=0"`
	Replicas        int            `json:"replicas" yaml:"replicas" validate:"min=1"`
	Volumes         []Volume       `json:"volumes" yaml:"volumes" validate:"dive"`
}

// Fill the empty collections the platform expects as `[]` or `{}` rather than `null`.
func (s *InstancesSpec) Normalize() {
	if s.Container.EnvFromConfig == nil {
		s.Container.EnvFromConfig = []string{}
	}
	if s.Container.Envs == nil {
		s.Container.Envs = map[string]string{}
	}
	if s.Container.Ports == nil {
		s.Container.Ports = []ContainerPort{}
	}
	if s.HealthCheck == nil {
		s.HealthCheck = map[string]any{}
	}
	if s.Volumes == nil {
		s.Volumes = []Volume{}
	}
}

package k8s

import (
	"fmt"

	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
)

// Configuration sources reported by NewRESTConfig.
const (
	SourceInCluster  = "in-cluster"
	SourceKubeConfig = "kubeconfig"
)

// NewRESTConfig resolves cluster credentials: in-cluster service account first,
// then the default loading rules ($KUBECONFIG list, ~/.kube/config). A non-empty
// kubeConfig replaces the loading rules with that file, and a non-empty
// kubeMaster overrides the server URL. It reports which source was used.
func NewRESTConfig(kubeConfig, kubeMaster string) (*rest.Config, string, error) {
	cfg, inClusterErr := rest.InClusterConfig()
	if inClusterErr == nil {
		return cfg, SourceInCluster, nil
	}

	rules := clientcmd.NewDefaultClientConfigLoadingRules()
	rules.ExplicitPath = kubeConfig

	overrides := &clientcmd.ConfigOverrides{}
	overrides.ClusterInfo.Server = kubeMaster

	cfg, err := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(rules, overrides).ClientConfig()
	if err != nil {
		return nil, "", fmt.Errorf("%w: in-cluster: %w, local: %w", ErrNoKubeConfig, inClusterErr, err)
	}

	return cfg, SourceKubeConfig, nil
}

// Package mockdata holds the canned git integration data the API serves.
// Every accessor returns a fresh slice.
package mockdata

import v1 "vinr.eu/launchpad/api/launchpad/v1"

const ProviderGitHub = "github"

func GitProviders() []v1.GitProvider {
	return []v1.GitProvider{
		{
			ID:             1,
			AccountID:      12345678,
			InstallationID: 87654321,
			Name:           "My GitHub Organization",
			Provider:       ProviderGitHub,
		},
		{
			ID:             2,
			AccountID:      98765432,
			InstallationID: 13579246,
			Name:           "Personal GitHub",
			Provider:       ProviderGitHub,
		},
	}
}

func GitRepositories() []v1.GitRepository {
	return []v1.GitRepository{
		{FullName: "janesmith/Hello-World", Kind: ProviderGitHub},
		{FullName: "janesmith/my-nextjs-app", Kind: ProviderGitHub},
		{FullName: "janesmith/react-portfolio", Kind: ProviderGitHub},
		{FullName: "janesmith/backend-api", Kind: ProviderGitHub},
	}
}

func Branches() []string {
	return []string{
		"main",
		"develop",
		"feature/user-authentication",
		"feature/new-ui-components",
		"hotfix/security-patch",
		"release/v1.2.0",
	}
}

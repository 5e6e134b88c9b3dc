// SPDX-License-Identifier: MIT

package evaluation

// Report is the metrics record for one evaluated partition.
type Report struct {
	// Parameter is passed through from the caller and never interpreted.
	Parameter float64 `json:"parameter" yaml:"parameter"`

	// CommunityCount is the number of communities in the detected partition.
	CommunityCount int `json:"communityCount" yaml:"communityCount"`

	Modularity                       float64 `json:"modularity" yaml:"modularity"`
	NormalizedMutualInformation      float64 `json:"nmi" yaml:"nmi"`
	NormalizedVariationOfInformation float64 `json:"nvi" yaml:"nvi"`
	JaccardIndex                     float64 `json:"jaccard" yaml:"jaccard"`
}

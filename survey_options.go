// Copyright 2017-26 the original author or authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package osmgraph

import (
	"runtime"
)

// DefaultNCpu provides the default number of CPUs.
func DefaultNCpu() uint16 {
	cpus := uint16(runtime.GOMAXPROCS(-1))

	return max(cpus-1, 1)
}

// surveyOptions provides optional configuration parameters for graph
// surveys.
type surveyOptions struct {
	nCPU uint16 // the number of goroutines inspecting candidates
}

// SurveyOption configures how a survey runs.
type SurveyOption func(*surveyOptions)

// WithNCpus lets you set the number of CPUs to use for background processing.
func WithNCpus(n uint16) SurveyOption {
	return func(o *surveyOptions) {
		o.nCPU = n
	}
}

// defaultSurveyConfig provides a default configuration for surveys.
var defaultSurveyConfig = surveyOptions{
	nCPU: DefaultNCpu(),
}

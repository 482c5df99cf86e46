// Copyright 2025 Nhat-Nguyen Nguyen
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

package worker

import (
	"context"
	"fmt"
	"html/template"
	"io"
	"testing"
)

var benchTmpl = template.Must(template.New("mail").Parse(
	`<h2>New Contact Form Submission</h2><p><strong>Name:</strong> {{.Name}}</p><p>{{.Message}}</p>`,
))

type benchJob struct {
	Name    string
	Message string
}

// rendering is the only CPU work a notification job does before it blocks
// on the network
func Benchmark_BlockingPool_RenderTemplate(b *testing.B) {
	job := benchJob{Name: "Jo <script>", Message: "Hello there, I would like to book a table."}
	w := func(_ context.Context, j benchJob) {
		_ = benchTmpl.Execute(io.Discard, j)
	}

	for _, size := range []int{1, 2, 4, 8} {
		b.Run(fmt.Sprintf("pool_size=%d", size), func(b *testing.B) {
			b.ReportAllocs()
			ctx := context.Background()
			jobs := make(chan benchJob, 1024)

			b.ResetTimer()
			go func(n int) {
				for range n {
					jobs <- job
				}
				close(jobs)
			}(b.N)

			BlockingPool(ctx, size, jobs, w)
		})
	}
}

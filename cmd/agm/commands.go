// Copyright 2025 go-highway Authors
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

package main

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-agm/agm"
	"github.com/ajroetker/go-agm/hwy"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the detected dispatch level and the variants this CPU runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "dispatch: %s (%d-byte vectors)\n", hwy.CurrentName(), hwy.CurrentWidth())
			if hwy.NoSimdEnv() {
				fmt.Fprintln(out, "HWY_NO_SIMD is set")
			}
			names := lo.Map(agm.SupportedVariants(), func(v agm.Variant, _ int) string {
				return fmt.Sprintf("%s(opt=%d)", v, int(v))
			})
			fmt.Fprintf(out, "variants: %s\n", strings.Join(names, " "))
			if level, err := agm.VariantAuto.Level(); err == nil {
				fmt.Fprintf(out, "auto: %s\n", agm.VariantForLevel(level))
			}
			return nil
		},
	}
}

func newCurveCmd() *cobra.Command {
	var bits int
	cmd := &cobra.Command{
		Use:   "curve",
		Short: "Print the base curve table of an integer bit depth as index,value lines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			table, err := agm.CurveTable(bits)
			if err != nil {
				return err
			}
			w := bufio.NewWriter(cmd.OutOrStdout())
			for i, v := range table {
				w.WriteString(strconv.Itoa(i))
				w.WriteByte(',')
				w.WriteString(strconv.FormatFloat(float64(v), 'g', -1, 32))
				w.WriteByte('\n')
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntVar(&bits, "bits", 8, "bit depth: "+strings.Join(lo.Map(agm.SupportedBitDepths, func(b, _ int) string {
		return strconv.Itoa(b)
	}), ", "))
	return cmd
}

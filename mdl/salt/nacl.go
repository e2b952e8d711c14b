// Copyright 2022 The Redflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package salt

// add salt to database
func init() {
	allocators["nacl"] = func() *Model {
		return &Model{
			Zplus: 1,       // Na+
			Zmin:  1,       // Cl-
			Vplus: 1,       // [-]
			Vmin:  1,       // [-]
			B:     3.0210,  // TCPC fit, Ge et al. (2007)
			S:     36.1573, // TCPC fit, Ge et al. (2007)
			N:     0.8998,  // TCPC fit, Ge et al. (2007)
		}
	}
}

// Copyright 2022 The Redflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package membrane

// add membrane pairs to database
func init() {

	// perfect membranes: no co-ion or water transport
	allocators["ideal"] = func() *Model {
		return &Model{
			Raem:  1.0e-4, // [Ohm·m²]
			Rcem:  1.0e-4, // [Ohm·m²]
			Alpha: 0.90,   // [-]
			Dnacl: 0,      // [m²/s]
			Dw:    0,      // [m²/s]
			Hm:    80e-6,  // [m]
			Keosm: 0,      // [-]
		}
	}

	// Fujifilm CEM/AEM type 10
	allocators["fujifilm-type-10"] = func() *Model {
		return &Model{
			Raem:  1.77e-4, // [Ohm·m²]
			Rcem:  2.69e-4, // [Ohm·m²]
			Alpha: 0.946,   // [-]
			Dnacl: 1.5e-12, // [m²/s]
			Dw:    4.5e-9,  // [m²/s]
			Hm:    145e-6,  // [m]
			Keosm: 6,       // [-]
		}
	}
}

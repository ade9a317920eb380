// SPDX-License-Identifier: EPL-2.0

package render

type mix []Puller

// Mix sums several pullers into one, e.g. a voice ring and an effects
// launcher sharing a device. Nil pullers are dropped.
func Mix(pullers ...Puller) Puller {
	m := make(mix, 0, len(pullers))
	for _, p := range pullers {
		if p != nil {
			m = append(m, p)
		}
	}

	return m
}

func (m mix) Next() {
	for _, p := range m {
		p.Next()
	}
}

func (m mix) Read() float64 {
	var sum float64
	for _, p := range m {
		sum += p.Read()
	}

	return sum
}

package models

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// Clone возвращает копию точки, не разделяющую высоту с исходной
func (p LatLonAlt) Clone() LatLonAlt {
	p.AltMeters = cloneFloat(p.AltMeters)
	return p
}

func clonePoint(p *LatLonAlt) *LatLonAlt {
	if p == nil {
		return nil
	}
	c := p.Clone()
	return &c
}

func (b BaseEntity) clone() BaseEntity {
	if b.UpdatedAt != nil {
		t := *b.UpdatedAt
		b.UpdatedAt = &t
	}
	return b
}

// Clone возвращает глубокую копию дрона
func (d *Drone) Clone() Drone {
	c := *d
	c.BaseEntity = d.BaseEntity.clone()
	c.Position = d.Position.Clone()
	c.HeadingDeg = cloneFloat(d.HeadingDeg)
	c.GroundSpeedMps = cloneFloat(d.GroundSpeedMps)
	c.BatteryPct = cloneFloat(d.BatteryPct)
	c.LinkQualityPct = cloneFloat(d.LinkQualityPct)
	return c
}

// Clone возвращает глубокую копию расчета
func (k *K9Unit) Clone() K9Unit {
	c := *k
	c.BaseEntity = k.BaseEntity.clone()
	c.LastKnownPosition = clonePoint(k.LastKnownPosition)
	if k.Capabilities != nil {
		c.Capabilities = append([]K9Capability(nil), k.Capabilities...)
	}
	return c
}

// Clone возвращает глубокую копию спасателя
func (r *Responder) Clone() Responder {
	c := *r
	c.BaseEntity = r.BaseEntity.clone()
	c.LastKnownPosition = clonePoint(r.LastKnownPosition)
	return c
}

// Clone возвращает глубокую копию инцидента
func (i *Incident) Clone() Incident {
	c := *i
	c.BaseEntity = i.BaseEntity.clone()
	c.Position = i.Position.Clone()
	if i.RelatedEntityIDs != nil {
		c.RelatedEntityIDs = append([]ID(nil), i.RelatedEntityIDs...)
	}
	return c
}

// Clone возвращает глубокую копию зоны
func (z *Zone) Clone() Zone {
	c := *z
	c.BaseEntity = z.BaseEntity.clone()
	if z.Geometry.Vertices != nil {
		c.Geometry.Vertices = make([]LatLonAlt, len(z.Geometry.Vertices))
		for i, v := range z.Geometry.Vertices {
			c.Geometry.Vertices[i] = v.Clone()
		}
	}
	c.AltitudeFloorMeters = cloneFloat(z.AltitudeFloorMeters)
	c.AltitudeCeilingMeters = cloneFloat(z.AltitudeCeilingMeters)
	if z.ScentMeta != nil {
		meta := *z.ScentMeta
		c.ScentMeta = &meta
	}
	return c
}

// Clone возвращает копию миссии с собственным AOI
func (m *Mission) Clone() Mission {
	c := *m
	if m.AOI != nil {
		aoi := *m.AOI
		c.AOI = &aoi
	}
	return c
}

// Clone возвращает копию вида с собственными углами
func (v *MapDefaultView) Clone() MapDefaultView {
	c := *v
	c.Heading = cloneFloat(v.Heading)
	c.Pitch = cloneFloat(v.Pitch)
	c.Roll = cloneFloat(v.Roll)
	return c
}

package math

// TrackQuat returns the rotation that points the local aim axis along
// forward, using up to resolve the roll about forward.
//
// The frame is built as right = normalize(forward x up) and
// up' = right x forward. The local aim axis maps to forward, the local up
// axis maps to up', and the remaining axis completes a right-handed basis.
// When forward is parallel to up, another world axis (Z, then Y, then X)
// that differs from both aim and up is used instead.
func TrackQuat(forward Vec3, aim, up Axis) Quat {
	f := forward.Normalize()
	if f == (Vec3{}) {
		return QuatIdentity()
	}
	if up.Index() == aim.Index() {
		up = fallbackUp(aim, up)
	}

	right := f.Cross(up.Vec3())
	if right.Length() < 1e-6 {
		up = fallbackUp(aim, up)
		right = f.Cross(up.Vec3())
	}
	right = right.Normalize()
	upProj := right.Cross(f)

	var cols [3]Vec3
	a, u := aim.Index(), up.Index()
	w := 3 - a - u
	cols[a] = f.Scale(aim.Sign())
	// up' is the image of the signed local up axis.
	cols[u] = upProj.Scale(up.Sign())
	if (u-a+3)%3 == 1 {
		cols[w] = cols[a].Cross(cols[u])
	} else {
		cols[w] = cols[u].Cross(cols[a])
	}

	return QuatFromMat3(Mat3FromColumns(cols[0], cols[1], cols[2]))
}

// fallbackUp picks a replacement up reference for a degenerate frame.
func fallbackUp(aim, up Axis) Axis {
	for _, candidate := range []Axis{AxisPosZ, AxisPosY, AxisPosX} {
		if candidate.Index() != aim.Index() && candidate.Index() != up.Index() {
			return candidate
		}
	}
	return AxisPosY
}
